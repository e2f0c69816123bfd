package services

// Collection names match the production deployment.
const (
	usersCollection    = "users"
	mealsCollection    = "meals"
	upcomingCollection = "upcomingmeals"
	reviewsCollection  = "mealsreview"
	requestsCollection = "requests"
	paymentsCollection = "paymentHistory"
)
