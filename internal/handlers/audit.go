package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/models"
)

type auditLogResponse struct {
	ID        uint   `json:"id"`
	CreatedAt string `json:"created_at"`
	UserEmail string `json:"user_email"`
	Entity    string `json:"entity"`
	EntityID  uint   `json:"entity_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// ListAuditLogs shows the most recent mutations, optionally filtered by
// entity type and id.
func ListAuditLogs(c *gin.Context) {
	query := database.DB.Preload("User").Order("created_at desc").Limit(200)

	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity = ?", entity)
	}
	if entityIDStr := c.Query("entity_id"); entityIDStr != "" {
		if eid, err := strconv.Atoi(entityIDStr); err == nil && eid > 0 {
			query = query.Where("entity_id = ?", eid)
		}
	}

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit logs"})
		return
	}

	response := make([]auditLogResponse, 0, len(logs))
	for _, entry := range logs {
		response = append(response, auditLogResponse{
			ID:        entry.ID,
			CreatedAt: entry.CreatedAt.Format("2006-01-02 15:04:05"),
			UserEmail: entry.User.Email,
			Entity:    entry.Entity,
			EntityID:  entry.EntityID,
			Action:    entry.Action,
			Details:   entry.Details,
		})
	}
	c.JSON(http.StatusOK, response)
}
