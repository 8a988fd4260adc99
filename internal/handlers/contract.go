package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

type contractRequest struct {
	ProjectID          uint            `json:"project_id" binding:"required"`
	ServiceDescription string          `json:"service_description" binding:"required"`
	StartDate          string          `json:"start_date" binding:"required"`
	ExpirationDate     string          `json:"expiration_date" binding:"required"`
	Value              decimal.Decimal `json:"value"`
	TermsAndConditions bool            `json:"terms_and_conditions"`
	EmployeeIDs        []uint          `json:"employee_ids"` // optional bulk allocation at creation
}

type allocationResponse struct {
	ID             uint   `json:"id"`
	EmployeeID     uint   `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	ContractID     uint   `json:"contract_id"`
	StartDate      string `json:"start_date"`
	DurationInDays int    `json:"duration_in_days"`
}

type contractResponse struct {
	ID                 uint                  `json:"id"`
	ProjectID          uint                  `json:"project_id"`
	ProjectName        string                `json:"project_name,omitempty"`
	ServiceDescription string                `json:"service_description"`
	StartDate          string                `json:"start_date"`
	ExpirationDate     string                `json:"expiration_date"`
	DurationInDays     int                   `json:"duration_in_days"`
	Value              decimal.Decimal       `json:"value"`
	RealValue          decimal.Decimal       `json:"real_value"`
	TermsAndConditions bool                  `json:"terms_and_conditions"`
	Status             models.ContractStatus `json:"status"`
	IsOnStandby        bool                  `json:"is_on_standby"`
	Allocations        []allocationResponse  `json:"allocations,omitempty"`
}

func toAllocationResponse(a *models.EmployeeContract) allocationResponse {
	resp := allocationResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		ContractID:     a.ContractID,
		StartDate:      a.StartDate.Format(dateLayout),
		DurationInDays: a.DurationInDays,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.Name
	}
	return resp
}

func toContractResponse(contract *models.Contract) contractResponse {
	resp := contractResponse{
		ID:                 contract.ID,
		ProjectID:          contract.ProjectID,
		ServiceDescription: contract.ServiceDescription,
		StartDate:          contract.StartDate.Format(dateLayout),
		ExpirationDate:     contract.ExpirationDate.Format(dateLayout),
		DurationInDays:     contract.DurationInDays(),
		Value:              contract.Value,
		RealValue:          contract.RealValue,
		TermsAndConditions: contract.TermsAndConditions,
		Status:             contract.Status,
		IsOnStandby:        contract.IsOnStandby,
	}
	if contract.Project != nil {
		resp.ProjectName = contract.Project.ProjectName
	}
	for i := range contract.EmployeeContracts {
		resp.Allocations = append(resp.Allocations, toAllocationResponse(&contract.EmployeeContracts[i]))
	}
	return resp
}

func ListContracts(c *gin.Context) {
	query := database.DB.Preload("Project").Order("created_at desc")

	if projectIDStr := c.Query("project_id"); projectIDStr != "" {
		if pid, err := strconv.Atoi(projectIDStr); err == nil && pid > 0 {
			query = query.Where("project_id = ?", pid)
		}
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var contracts []models.Contract
	if err := query.Find(&contracts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contracts"})
		return
	}

	response := make([]contractResponse, 0, len(contracts))
	for i := range contracts {
		response = append(response, toContractResponse(&contracts[i]))
	}
	c.JSON(http.StatusOK, response)
}

func GetContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var contract models.Contract
	err := database.DB.
		Preload("Project.Client").
		Preload("EmployeeContracts.Employee").
		First(&contract, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}
	c.JSON(http.StatusOK, toContractResponse(&contract))
}

func CreateContract(c *gin.Context) {
	var body contractRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	body.ServiceDescription = strings.TrimSpace(body.ServiceDescription)
	if body.ServiceDescription == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service_description is required"})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	expiration, err := parseDate(body.ExpirationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expiration_date"})
		return
	}
	if expiration.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must not precede start_date"})
		return
	}

	var project models.Project
	if err := database.DB.First(&project, body.ProjectID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project not found"})
		return
	}

	contract := models.Contract{
		ProjectID:          project.ID,
		ServiceDescription: body.ServiceDescription,
		StartDate:          start,
		ExpirationDate:     expiration,
		Value:              body.Value,
		TermsAndConditions: body.TermsAndConditions,
		Status:             models.ContractNotStarted,
	}
	if err := database.DB.Create(&contract).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contract"})
		return
	}

	// Staffing picked at creation: one allocation per employee, carrying the
	// contract's own duration.
	if len(body.EmployeeIDs) > 0 {
		allocations, err := engine.New(database.DB).BulkAllocate(contract.ID, body.EmployeeIDs)
		if err != nil {
			// The contract itself was created; the staffing batch was
			// rejected whole and can be retried via the allocation endpoint.
			engineError(c, err)
			return
		}
		contract.EmployeeContracts = allocations
	}

	audit(c, "contract", contract.ID, "create", "created contract: "+contract.ServiceDescription)
	contract.Project = &project
	c.JSON(http.StatusCreated, toContractResponse(&contract))
}

type contractUpdateRequest struct {
	ServiceDescription string          `json:"service_description" binding:"required"`
	StartDate          string          `json:"start_date" binding:"required"`
	ExpirationDate     string          `json:"expiration_date" binding:"required"`
	Value              decimal.Decimal `json:"value"`
	TermsAndConditions bool            `json:"terms_and_conditions"`
}

func UpdateContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var contract models.Contract
	if err := database.DB.First(&contract, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}

	var body contractUpdateRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	expiration, err := parseDate(body.ExpirationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expiration_date"})
		return
	}
	if expiration.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must not precede start_date"})
		return
	}

	contract.ServiceDescription = strings.TrimSpace(body.ServiceDescription)
	contract.StartDate = start
	contract.ExpirationDate = expiration
	contract.Value = body.Value
	contract.TermsAndConditions = body.TermsAndConditions

	if err := database.DB.Save(&contract).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contract"})
		return
	}

	audit(c, "contract", contract.ID, "update", "updated contract: "+contract.ServiceDescription)
	c.JSON(http.StatusOK, toContractResponse(&contract))
}

func DeleteContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	plan, err := engine.New(database.DB).DeleteContract(id)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "contract", id, "delete", "deleted contract with cascade")
	c.JSON(http.StatusOK, gin.H{
		"deleted_allocations": len(plan.EmployeeContractIDs),
		"contract_id":         plan.ContractID,
	})
}
