package controllers

import (
	"errors"

	"mealmate/config"
	"mealmate/services"

	"github.com/gin-gonic/gin"
)

func CreateReview(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	mealID, _ := body["mealId"].(string)
	text, _ := body["text"].(string)
	delete(body, "mealId")
	delete(body, "text")

	svc := services.NewReviewService(config.DB)
	err := svc.Create(c.Request.Context(), mealID, text, body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			c.JSON(400, gin.H{"error": "mealId and text are required"})
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid meal ID"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func ListReviews(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	reviews, err := svc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func ListUserReviews(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	reviews, err := svc.ListForUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func ListMealReviews(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	reviews, err := svc.ListForMeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			c.JSON(400, gin.H{"error": "Invalid meal ID"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, reviews)
}

func GetReview(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	review, err := svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid review ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Review not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, review)
}

func UpdateReview(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	svc := services.NewReviewService(config.DB)
	err := svc.UpdateText(c.Request.Context(), c.Param("id"), body.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid review ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Review not found or not updated."})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true})
}

func DeleteReview(c *gin.Context) {
	svc := services.NewReviewService(config.DB)
	err := svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID):
			c.JSON(400, gin.H{"error": "Invalid review ID"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(404, gin.H{"error": "Review not found"})
		default:
			c.JSON(500, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Review deleted successfully"})
}
