package controllers

import (
	"errors"

	"mealmate/config"
	"mealmate/services"

	"github.com/gin-gonic/gin"
)

func CreateUser(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewUserService(config.DB)
	created, err := svc.Create(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(400, gin.H{"error": "Email is required"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(200, gin.H{"success": false, "message": "User already exists"})
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func GetUser(c *gin.Context) {
	svc := services.NewUserService(config.DB)
	user, err := svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, user)
}

// ListOtherUsers returns every account except the caller's own.
func ListOtherUsers(c *gin.Context) {
	svc := services.NewUserService(config.DB)
	users, err := svc.ListOthers(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

func SearchUsers(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(400, gin.H{"error": "Email is required"})
		return
	}
	svc := services.NewUserService(config.DB)
	users, err := svc.Search(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

func UpdateUserRole(c *gin.Context) {
	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewUserService(config.DB)
	err := svc.SetRole(c.Request.Context(), c.Param("id"), body.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(400, gin.H{"error": "Invalid role"})
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid user ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "User not found or role unchanged"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true})
}
