package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/middleware"
	"hr-manager/internal/models"
	"hr-manager/internal/reports"
)

// ProjectPerformanceReport renders budget vs. real cost and planned vs.
// elapsed time per project. Client-role users are scoped to their own
// company.
func ProjectPerformanceReport(c *gin.Context) {
	var clientID *uint
	if user, ok := middleware.CurrentUser(c); ok && user.Role == models.RoleClient {
		if user.ClientID == nil {
			c.JSON(http.StatusOK, []reports.ProjectPerformance{})
			return
		}
		clientID = user.ClientID
	}

	rows, err := reports.ProjectPerformanceReport(database.DB, clientID, c.Query("search"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Dashboard returns the headline counts for the landing page.
func Dashboard(c *gin.Context) {
	summary, err := reports.Dashboard(database.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
