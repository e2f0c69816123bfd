package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"mealmate/logger"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// InitDB connects to MongoDB once at startup. The client stays open for the
// lifetime of the process and is reused by every request.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.ddy6nyc.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			os.Getenv("MONGO_USER"),
			os.Getenv("MONGO_PASS"),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	name := os.Getenv("MONGO_DB")
	if name == "" {
		name = "mealmate"
	}

	Client = client
	DB = client.Database(name)
	logger.Info("connected to MongoDB", zap.String("database", name))
}

// CloseDB disconnects the shared client.
func CloseDB() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect from MongoDB", zap.Error(err))
	}
}
