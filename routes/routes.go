package routes

import (
	"mealmate/controllers"
	"mealmate/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Server is running!")
	})

	// Users
	r.POST("/users", controllers.CreateUser)
	r.GET("/user/:email", controllers.GetUser)
	r.GET("/users/recent/:email", controllers.ListOtherUsers)
	r.GET("/users/search", controllers.SearchUsers)
	r.PATCH("/users/:id/role", controllers.UpdateUserRole)

	// Meals
	r.POST("/meals", controllers.CreateMeal)
	r.GET("/meals", controllers.ListMeals)
	r.GET("/meals/three", controllers.TopMeals)
	r.GET("/meals-by-category", controllers.MealsByCategory)
	r.GET("/meals/search", controllers.SearchMeal)
	r.GET("/meals/:id", controllers.GetMeal)
	r.PUT("/meals/:id", controllers.UpdateMeal)
	r.DELETE("/meals/:id", controllers.DeleteMeal)
	r.PATCH("/meals/:id/like", controllers.LikeMeal)

	// Upcoming meals
	r.POST("/upcoming-meals", controllers.CreateUpcomingMeal)
	r.GET("/upcoming-meals", controllers.ListUpcomingMeals)
	r.POST("/upcoming-meals/:id", controllers.PromoteUpcomingMeal)

	// Reviews
	r.POST("/reviews", controllers.CreateReview)
	r.GET("/reviews", controllers.ListReviews)
	r.GET("/reviews/user/:email", controllers.ListUserReviews)
	r.GET("/reviews/meal/:id", controllers.ListMealReviews)
	r.GET("/reviews/:id", controllers.GetReview)
	r.PATCH("/reviews/:id", controllers.UpdateReview)
	r.DELETE("/reviews/:id", controllers.DeleteReview)

	// Meal requests
	r.POST("/request-meal", controllers.CreateRequest)
	r.GET("/requested-meals", controllers.ListRequests)
	r.GET("/requests/:email", controllers.ListUserRequests)
	r.PATCH("/requested-meals/:id", controllers.UpdateRequestStatus)
	r.DELETE("/requests/:id", controllers.DeleteRequest)

	// Payments
	r.POST("/create-payment-intent", controllers.CreatePaymentIntent)
	r.POST("/confirm-payment", controllers.ConfirmPayment)
	r.GET("/payments/:email", controllers.PaymentHistory)

	return r
}
