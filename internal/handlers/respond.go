package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
)

const dateLayout = "2006-01-02"

// engineError maps the engine's error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal error.
func engineError(c *gin.Context, err error) {
	var dup *engine.DuplicateAllocationError
	var invalid *engine.InvalidTransitionError
	var violation *engine.ConstraintViolationError

	switch {
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": invalid.Error()})
	case errors.As(err, &violation):
		c.JSON(http.StatusConflict, gin.H{"error": violation.Error()})
	case errors.Is(err, engine.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "modified by another request, reload and retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// audit records the acting user's mutation; silently skipped for requests
// without a session user.
func audit(c *gin.Context, entity string, entityID uint, action, details string) {
	sess := sessions.Default(c)
	if uid, ok := sess.Get("user_id").(uint); ok && uid > 0 {
		database.CreateAuditLog(uid, entity, entityID, action, details)
	}
}
