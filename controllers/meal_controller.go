package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"mealmate/config"
	"mealmate/services"

	"github.com/gin-gonic/gin"
)

func CreateMeal(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCatalogService(config.DB)
	id, err := svc.CreateMeal(c.Request.Context(), doc)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "insertedId": id.Hex()})
}

func ListMeals(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	meals, err := svc.ListMeals(c.Request.Context(),
		c.Query("search"),
		c.Query("category"),
		c.DefaultQuery("sortBy", "date"),
		c.DefaultQuery("sortOrder", "desc"),
	)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

func TopMeals(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	meals, err := svc.TopMeals(c.Request.Context(), 3)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

func MealsByCategory(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "3"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 3
	}
	svc := services.NewCatalogService(config.DB)
	meals, err := svc.TopMealsByCategory(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

func SearchMeal(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(400, gin.H{"error": "Title query is required"})
		return
	}
	svc := services.NewCatalogService(config.DB)
	meal, err := svc.SearchByExactTitle(c.Request.Context(), title)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meal)
}

func GetMeal(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	meal, err := svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Meal not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, meal)
}

func UpdateMeal(c *gin.Context) {
	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCatalogService(config.DB)
	err := svc.UpdateMeal(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Meal not found or not updated."})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Meal updated successfully."})
}

func DeleteMeal(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	removed, err := svc.DeleteMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid meal ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Meal not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "message": fmt.Sprintf("Meal deleted. Removed %d reviews.", removed)})
}

func LikeMeal(c *gin.Context) {
	var body struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewCatalogService(config.DB)
	err := svc.SetLike(c.Request.Context(), c.Param("id"), body.Action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid ID"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(400, gin.H{"error": "Invalid action"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "action": body.Action})
}
