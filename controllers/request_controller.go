package controllers

import (
	"errors"

	"mealmate/config"
	"mealmate/services"

	"github.com/gin-gonic/gin"
)

func CreateRequest(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	userEmail, _ := body["userEmail"].(string)
	mealID, _ := body["mealId"].(string)
	delete(body, "userEmail")
	delete(body, "mealId")

	svc := services.NewRequestService(config.DB)
	created, err := svc.Create(c.Request.Context(), userEmail, mealID, body)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(400, gin.H{"success": false, "error": "Missing userEmail or mealId"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(200, gin.H{"success": false, "message": "Already requested."})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Request created."})
}

func ListRequests(c *gin.Context) {
	svc := services.NewRequestService(config.DB)
	requests, err := svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, requests)
}

func ListUserRequests(c *gin.Context) {
	svc := services.NewRequestService(config.DB)
	requests, err := svc.ListForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, requests)
}

func UpdateRequestStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewRequestService(config.DB)
	err := svc.SetStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(400, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid request ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Request not found or status unchanged"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "status": body.Status})
}

func DeleteRequest(c *gin.Context) {
	svc := services.NewRequestService(config.DB)
	err := svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid request ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Request not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Request deleted successfully"})
}
