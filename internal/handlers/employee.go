package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

type employeeRequest struct {
	Name               string `json:"name" binding:"required"`
	Position           string `json:"position" binding:"required"`
	SpecializationArea string `json:"specialization_area"`
}

type employeeResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Position           string `json:"position"`
	SpecializationArea string `json:"specialization_area"`
	TotalContracts     int    `json:"total_contracts"`
	ActiveContracts    int    `json:"active_contracts"`
	IsAvailable        bool   `json:"is_available"`
}

func toEmployeeResponse(c *gin.Context, employee *models.Employee, now time.Time) (employeeResponse, bool) {
	active, err := engine.ActiveAllocationCount(employee, now)
	if err != nil {
		// A broken allocation reference is corrupt data, not a skippable row.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return employeeResponse{}, false
	}
	return employeeResponse{
		ID:                 employee.ID,
		Name:               employee.Name,
		Position:           employee.Position,
		SpecializationArea: employee.SpecializationArea,
		TotalContracts:     employee.TotalContracts(),
		ActiveContracts:    active,
		IsAvailable:        active == 0,
	}, true
}

func ListEmployees(c *gin.Context) {
	query := database.DB.Preload("EmployeeContracts.Contract").Order("name asc")

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load employees"})
		return
	}

	now := time.Now()
	onlyAvailable := c.Query("available") == "true"

	response := make([]employeeResponse, 0, len(employees))
	for i := range employees {
		row, ok := toEmployeeResponse(c, &employees[i], now)
		if !ok {
			return
		}
		if onlyAvailable && !row.IsAvailable {
			continue
		}
		response = append(response, row)
	}
	c.JSON(http.StatusOK, response)
}

func GetEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	employee, err := engine.New(database.DB).LoadEmployee(id)
	if err != nil {
		engineError(c, err)
		return
	}

	row, ok := toEmployeeResponse(c, employee, time.Now())
	if !ok {
		return
	}
	c.JSON(http.StatusOK, row)
}

func validateEmployeeRequest(c *gin.Context, body *employeeRequest) bool {
	body.Name = strings.TrimSpace(body.Name)
	body.Position = strings.TrimSpace(body.Position)

	if len(body.Name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be at least 2 characters"})
		return false
	}
	if len(body.Position) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position must be at least 2 characters"})
		return false
	}
	return true
}

func CreateEmployee(c *gin.Context) {
	var body employeeRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !validateEmployeeRequest(c, &body) {
		return
	}

	employee := models.Employee{
		Name:               body.Name,
		Position:           body.Position,
		SpecializationArea: strings.TrimSpace(body.SpecializationArea),
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}

	audit(c, "employee", employee.ID, "create", "created employee: "+employee.Name)
	row, ok := toEmployeeResponse(c, &employee, time.Now())
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, row)
}

func UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var body employeeRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !validateEmployeeRequest(c, &body) {
		return
	}

	employee.Name = body.Name
	employee.Position = body.Position
	employee.SpecializationArea = strings.TrimSpace(body.SpecializationArea)

	if err := database.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update employee"})
		return
	}

	audit(c, "employee", employee.ID, "update", "updated employee: "+employee.Name)
	row, ok := toEmployeeResponse(c, &employee, time.Now())
	if !ok {
		return
	}
	c.JSON(http.StatusOK, row)
}

func DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := engine.New(database.DB).DeleteEmployee(id); err != nil {
		engineError(c, err)
		return
	}

	audit(c, "employee", id, "delete", "deleted employee")
	c.Status(http.StatusNoContent)
}
