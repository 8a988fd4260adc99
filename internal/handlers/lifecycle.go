package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

type initServicesRequest struct {
	RealStartDate string `json:"real_start_date" binding:"required"`
}

// InitContractServices marks the start of real work on a contract.
func InitContractServices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body initServicesRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	realStart, err := parseDate(body.RealStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid real_start_date"})
		return
	}

	contract, err := engine.New(database.DB).InitServices(id, realStart)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contract.ID, "status_change", "services initiated")
	c.JSON(http.StatusOK, toContractResponse(contract))
}

type pauseServicesRequest struct {
	IsOnStandby *bool `json:"is_on_standby" binding:"required"`
}

// PauseContractServices pauses or resumes a running contract.
func PauseContractServices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body pauseServicesRequest
	if err := c.BindJSON(&body); err != nil || body.IsOnStandby == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	contract, err := engine.New(database.DB).PauseServices(id, *body.IsOnStandby)
	if err != nil {
		engineError(c, err)
		return
	}

	action := "services resumed"
	if *body.IsOnStandby {
		action = "services put on standby"
	}
	audit(c, "contract", contract.ID, "status_change", action)
	c.JSON(http.StatusOK, toContractResponse(contract))
}

type finishContractRequest struct {
	RealEndDate string          `json:"real_end_date" binding:"required"`
	RealValue   decimal.Decimal `json:"real_value"`
}

// FinishContract closes out a contract with its actual end date and
// settlement value.
func FinishContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body finishContractRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	realEnd, err := parseDate(body.RealEndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid real_end_date"})
		return
	}

	contract, err := engine.New(database.DB).FinishContract(id, realEnd, body.RealValue)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contract.ID, "status_change", "contract finished")
	c.JSON(http.StatusOK, toContractResponse(contract))
}

// CancelContract aborts a contract that has not finished.
func CancelContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	contract, err := engine.New(database.DB).CancelContract(id)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contract.ID, "status_change", "contract cancelled")
	c.JSON(http.StatusOK, toContractResponse(contract))
}

type contractStatusRequest struct {
	Status models.ContractStatus `json:"status" binding:"required"`
}

// OverrideContractStatus sets the status directly, skipping the transition
// graph. Admin-only; wired behind RequireRole in the router.
func OverrideContractStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body contractStatusRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	contract, err := engine.New(database.DB).UpdateStatus(id, body.Status)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", contract.ID, "status_change", "status overridden to: "+string(body.Status))
	c.JSON(http.StatusOK, toContractResponse(contract))
}
