package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
	"hr-manager/internal/middleware"
	"hr-manager/internal/models"
)

type projectRequest struct {
	ClientID    uint            `json:"client_id" binding:"required"`
	ProjectName string          `json:"project_name" binding:"required"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date" binding:"required"`
	DueDate     string          `json:"due_date" binding:"required"`
	Budget      decimal.Decimal `json:"budget"`
}

type projectResponse struct {
	ID          uint                 `json:"id"`
	ClientID    uint                 `json:"client_id"`
	ClientName  string               `json:"client_name,omitempty"`
	ProjectName string               `json:"project_name"`
	Description string               `json:"description"`
	StartDate   string               `json:"start_date"`
	DueDate     string               `json:"due_date"`
	Budget      decimal.Decimal      `json:"budget"`
	Status      models.ProjectStatus `json:"status"`
	Contracts   int                  `json:"contracts"`
}

func toProjectResponse(p *models.Project) projectResponse {
	resp := projectResponse{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ProjectName: p.ProjectName,
		Description: p.Description,
		StartDate:   p.StartDate.Format(dateLayout),
		DueDate:     p.DueDate.Format(dateLayout),
		Budget:      p.Budget,
		Status:      p.Status,
		Contracts:   len(p.Contracts),
	}
	if p.Client != nil {
		resp.ClientName = p.Client.CompanyName
	}
	return resp
}

func ListProjects(c *gin.Context) {
	query := database.DB.Preload("Client").Preload("Contracts").Order("created_at desc")

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		if cid, err := strconv.Atoi(clientIDStr); err == nil && cid > 0 {
			query = query.Where("client_id = ?", cid)
		}
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	// Client-role users only ever see their own company's projects.
	if user, ok := middleware.CurrentUser(c); ok && user.Role == models.RoleClient {
		if user.ClientID == nil {
			c.JSON(http.StatusOK, []projectResponse{})
			return
		}
		query = query.Where("client_id = ?", *user.ClientID)
	}

	var projects []models.Project
	if err := query.Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	response := make([]projectResponse, 0, len(projects))
	for i := range projects {
		response = append(response, toProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, response)
}

func GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var project models.Project
	err := database.DB.Preload("Client").Preload("Contracts").First(&project, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	if user, ok := middleware.CurrentUser(c); ok && user.Role == models.RoleClient {
		if user.ClientID == nil || *user.ClientID != project.ClientID {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
	}

	c.JSON(http.StatusOK, toProjectResponse(&project))
}

func parseProjectRequest(c *gin.Context, body *projectRequest) (start, due time.Time, ok bool) {
	body.ProjectName = strings.TrimSpace(body.ProjectName)
	if len(body.ProjectName) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name must be at least 3 characters"})
		return
	}

	var err error
	if start, err = parseDate(body.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	if due, err = parseDate(body.DueDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}
	if due.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must not precede start_date"})
		return
	}
	if body.Budget.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget must not be negative"})
		return
	}
	return start, due, true
}

func CreateProject(c *gin.Context) {
	var body projectRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, due, ok := parseProjectRequest(c, &body)
	if !ok {
		return
	}

	var client models.Client
	if err := database.DB.First(&client, body.ClientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client not found"})
		return
	}

	project := models.Project{
		ClientID:    client.ID,
		ProjectName: body.ProjectName,
		Description: strings.TrimSpace(body.Description),
		StartDate:   start,
		DueDate:     due,
		Budget:      body.Budget,
		Status:      models.ProjectNotStarted,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	audit(c, "project", project.ID, "create", "created project: "+project.ProjectName)
	project.Client = &client
	c.JSON(http.StatusCreated, toProjectResponse(&project))
}

func UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	var body projectRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, due, ok := parseProjectRequest(c, &body)
	if !ok {
		return
	}

	var client models.Client
	if err := database.DB.First(&client, body.ClientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client not found"})
		return
	}

	project.ClientID = client.ID
	project.ProjectName = body.ProjectName
	project.Description = strings.TrimSpace(body.Description)
	project.StartDate = start
	project.DueDate = due
	project.Budget = body.Budget

	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	audit(c, "project", project.ID, "update", "updated project: "+project.ProjectName)
	project.Client = &client
	c.JSON(http.StatusOK, toProjectResponse(&project))
}

type projectStatusRequest struct {
	Status models.ProjectStatus `json:"status" binding:"required"`
}

// canChangeProjectStatus encodes who may move a project where. Admins may
// do anything; project managers follow the forward-only graph.
func canChangeProjectStatus(role models.Role, current, next models.ProjectStatus) bool {
	if current == next {
		return false
	}

	switch role {
	case models.RoleAdmin:
		return true

	case models.RoleProjectManager:
		switch current {
		case models.ProjectNotStarted:
			return next == models.ProjectInProgress || next == models.ProjectCancelled
		case models.ProjectInProgress:
			return next == models.ProjectOnHold || next == models.ProjectCompleted || next == models.ProjectCancelled
		case models.ProjectOnHold:
			return next == models.ProjectInProgress || next == models.ProjectCancelled
		}
		return false

	default:
		return false
	}
}

func ChangeProjectStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body projectStatusRequest
	if err := c.BindJSON(&body); err != nil || !body.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var project models.Project
	if err := database.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !canChangeProjectStatus(user.Role, project.Status, body.Status) {
		c.JSON(http.StatusForbidden, gin.H{"error": "status change not allowed"})
		return
	}

	project.Status = body.Status
	if err := database.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	audit(c, "project", project.ID, "status_change", "status changed to: "+string(body.Status))
	c.JSON(http.StatusOK, toProjectResponse(&project))
}

func DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	plan, err := engine.New(database.DB).DeleteProject(id)
	if err != nil {
		engineError(c, err)
		return
	}

	audit(c, "project", id, "delete", "deleted project with cascade")
	c.JSON(http.StatusOK, gin.H{
		"deleted_allocations": len(plan.EmployeeContractIDs),
		"deleted_contracts":   len(plan.ContractIDs),
		"project_id":          plan.ProjectID,
	})
}
