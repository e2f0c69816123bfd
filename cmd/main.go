package main

import (
	"os"

	"mealmate/config"
	"mealmate/logger"
	"mealmate/routes"
	"mealmate/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Initialize()
	defer logger.Close()

	config.InitDB()
	defer config.CloseDB()
	utils.InitStripe()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	r := routes.SetupRouter()
	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
