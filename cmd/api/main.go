package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/pregen/shop-api/internal/handler/http"
	redisclient "github.com/pregen/shop-api/internal/infrastructure/cache"
	"github.com/pregen/shop-api/internal/infrastructure/config"
	database "github.com/pregen/shop-api/internal/infrastructure/database"
	"github.com/pregen/shop-api/internal/infrastructure/jwt"
	"github.com/pregen/shop-api/internal/infrastructure/logger"
	passwordservice "github.com/pregen/shop-api/internal/infrastructure/password_service"
	"github.com/pregen/shop-api/internal/infrastructure/repository/mongodb"
	"github.com/pregen/shop-api/internal/infrastructure/store"
	"github.com/pregen/shop-api/internal/infrastructure/uuidgen"
	"github.com/pregen/shop-api/internal/infrastructure/validator"
	"github.com/pregen/shop-api/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	appLogger := logger.NewSlogLogger(appConfig.LogLevel)

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.Mongo.URI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			appLogger.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	userCollection := mongoClient.Client.Database(appConfig.Mongo.DBName).Collection("users")
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.EnsureUserIndexes(indexCtx, userCollection)
	cancel()
	if err != nil {
		appLogger.Fatalf("Failed to prepare users collection: %v", err)
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(userCollection)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(appConfig.GetBcryptCost())
	jwtManager := jwt.NewJWTManager(appConfig.JWT.Secret, appConfig.GetTokenTTL())
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator, uuidGenerator)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL, appLogger)
		if err != nil {
			appLogger.Fatalf("Invalid REDIS_URL: %v", err)
		}
		defer redisclient.Close(rdb, appLogger)
		userUsecase.SetUserCache(store.NewUserCacheStore(rdb, appConfig.GetUserCacheTTL()))
		appLogger.Infof("User cache enabled")
	}

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(userUsecase, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s (%s)", appConfig.Port, appConfig.GetEnvironment())
	if err := router.Run(":" + appConfig.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
