package controllers

import (
	"errors"

	"mealmate/config"
	"mealmate/services"

	"github.com/gin-gonic/gin"
)

func CreateUpcomingMeal(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCatalogService(config.DB)
	id, err := svc.CreateUpcomingMeal(c.Request.Context(), doc)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(400, gin.H{"success": false, "message": "Missing required fields."})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "insertedId": id.Hex()})
}

func ListUpcomingMeals(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	meals, err := svc.ListUpcoming(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

// PromoteUpcomingMeal publishes an upcoming meal into the live catalog.
func PromoteUpcomingMeal(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	id, err := svc.Promote(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid meal ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Upcoming meal not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "insertedId": id.Hex(), "message": "Meal published successfully."})
}
