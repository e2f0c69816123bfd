package controllers

import (
	"errors"

	"mealmate/config"
	"mealmate/services"
	"mealmate/utils"

	"github.com/gin-gonic/gin"
)

func paymentService() *services.PaymentService {
	return services.NewPaymentService(config.DB, utils.StripeGateway{})
}

func CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	secret, err := paymentService().CreateIntent(body.Amount)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"clientSecret": secret})
}

func ConfirmPayment(c *gin.Context) {
	var body struct {
		UserEmail     string  `json:"userEmail"`
		PlanName      string  `json:"planName"`
		Amount        float64 `json:"amount"`
		TransactionID string  `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	result, err := paymentService().Confirm(c.Request.Context(),
		body.UserEmail, body.PlanName, body.Amount, body.TransactionID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "badgeUpdate": result.MatchedUsers, "payment": result.Payment})
}

func PaymentHistory(c *gin.Context) {
	history, err := paymentService().History(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(404, gin.H{"error": "No payment history found for this user"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, history)
}
