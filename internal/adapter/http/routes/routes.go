package routes

import (
	"log"
	"strconv"

	_ "illusphere_backend/docs" // This will be auto-generated
	"illusphere_backend/internal/adapter/http/handlers"
	"illusphere_backend/internal/adapter/http/middlewares"
	repository2 "illusphere_backend/internal/adapter/persistence/repository"
	"illusphere_backend/internal/infrastructure/cache"
	"illusphere_backend/internal/infrastructure/database"
	"illusphere_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)

	pricing := usecase.NewPricingEngine(catalogRepo)
	submissionUseCase := usecase.NewProjectSubmissionUseCase(clientRepo, projectRepo, pricing)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	projectHandler := handlers.NewProjectHandler(submissionUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	rdb := cache.ConnectRedis()
	if rdb == nil {
		log.Printf("Redis not configured: submission rate limiting disabled")
	}
	submissionLimiter := middlewares.SubmissionLimiter(rdb)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addIntakeRoutes(v1, projectHandler, catalogHandler, submissionLimiter)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
