package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/remla25-team8/model-service/docs"
	"github.com/remla25-team8/model-service/internal/adapter/http/handler"
	"github.com/remla25-team8/model-service/internal/adapter/http/middleware"
	"github.com/remla25-team8/model-service/internal/domain/repository"
	"github.com/remla25-team8/model-service/internal/usecase"
)

// Dependencies are the collaborators the routes are built from
type Dependencies struct {
	SentimentUC usecase.SentimentUsecase
	// Cache is nil when prediction caching is disabled
	Cache  repository.PredictionCache
	Model  string
	Logger *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.SentimentUC, deps.Cache, deps.Model)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API docs
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/apidocs/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Prediction routes
	sentimentHandler := handler.NewSentimentHandler(deps.SentimentUC, deps.Logger)
	router.POST("/predict", sentimentHandler.Predict)
	router.POST("/dumbpredict", sentimentHandler.DumbPredict)

	return router
}
