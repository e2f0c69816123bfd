package middlewares

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS restricts browsers to the configured web origin, with credentials
// allowed. CORS_ORIGIN overrides the production default.
func CORS() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "https://mealmate-93072.web.app"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{origin}
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	return cors.New(cfg)
}
