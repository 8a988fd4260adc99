package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
)

type addAllocationRequest struct {
	EmployeeID uint   `json:"employee_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date"` // optional; contract duration applies when absent
}

// AddAllocation links an employee to the contract in the path.
func AddAllocation(c *gin.Context) {
	contractID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body addAllocationRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	var end *time.Time
	if body.EndDate != "" {
		parsed, err := parseDate(body.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		if parsed.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
			return
		}
		end = &parsed
	}

	allocation, err := engine.New(database.DB).AddAllocation(body.EmployeeID, contractID, start, end)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contractID, "allocation_add", "employee allocated to contract")
	c.JSON(http.StatusCreated, toAllocationResponse(allocation))
}

// RemoveAllocation unlinks an employee from the contract.
func RemoveAllocation(c *gin.Context) {
	contractID, ok := parseID(c, "id")
	if !ok {
		return
	}
	allocationID, ok := parseID(c, "allocation_id")
	if !ok {
		return
	}

	if err := engine.New(database.DB).RemoveAllocation(allocationID); err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contractID, "allocation_remove", "employee removed from contract")
	c.Status(http.StatusNoContent)
}
