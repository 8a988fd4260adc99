package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-manager/internal/database"
	"hr-manager/internal/engine"
	"hr-manager/internal/models"
)

type clientRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Nif         string `json:"nif" binding:"required"`
	Email       string `json:"email"`
}

type clientResponse struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	Nif         string `json:"nif"`
	Email       string `json:"email"`
	Projects    int    `json:"projects"`
}

func toClientResponse(client *models.Client) clientResponse {
	return clientResponse{
		ID:          client.ID,
		CompanyName: client.CompanyName,
		Nif:         client.Nif,
		Email:       client.Email,
		Projects:    len(client.Projects),
	}
}

func ListClients(c *gin.Context) {
	var clients []models.Client
	if err := database.DB.Preload("Projects").Order("company_name asc").Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load clients"})
		return
	}

	response := make([]clientResponse, 0, len(clients))
	for i := range clients {
		response = append(response, toClientResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, response)
}

func GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := database.DB.Preload("Projects").First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}
	c.JSON(http.StatusOK, toClientResponse(&client))
}

func validateClientRequest(c *gin.Context, body *clientRequest, exceptID uint) bool {
	body.CompanyName = strings.TrimSpace(body.CompanyName)
	body.Nif = strings.TrimSpace(body.Nif)

	if len(body.CompanyName) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company name must be at least 3 characters"})
		return false
	}
	if len(body.Nif) != 9 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nif must be 9 characters"})
		return false
	}

	query := database.DB.Model(&models.Client{}).Where("nif = ?", body.Nif)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	query.Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "a client with this nif already exists"})
		return false
	}
	return true
}

func CreateClient(c *gin.Context) {
	var body clientRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !validateClientRequest(c, &body, 0) {
		return
	}

	client := models.Client{
		CompanyName: body.CompanyName,
		Nif:         body.Nif,
		Email:       strings.TrimSpace(body.Email),
	}
	if err := database.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}

	audit(c, "client", client.ID, "create", "created client: "+client.CompanyName)
	c.JSON(http.StatusCreated, toClientResponse(&client))
}

func UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	if err := database.DB.First(&client, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return
	}

	var body clientRequest
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !validateClientRequest(c, &body, client.ID) {
		return
	}

	client.CompanyName = body.CompanyName
	client.Nif = body.Nif
	client.Email = strings.TrimSpace(body.Email)

	if err := database.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update client"})
		return
	}

	audit(c, "client", client.ID, "update", "updated client: "+client.CompanyName)
	c.JSON(http.StatusOK, toClientResponse(&client))
}

func DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := engine.New(database.DB).DeleteClient(id); err != nil {
		engineError(c, err)
		return
	}

	audit(c, "client", id, "delete", "deleted client")
	c.Status(http.StatusNoContent)
}
