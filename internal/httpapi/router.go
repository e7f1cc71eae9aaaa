package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(api *API, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(requestID())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
		abortWithError(c, http.StatusInternalServerError)
	}))
	router.Use(metricsMiddleware())
	router.Use(corsHeaders())
	// Allow-Headers is left to corsHeaders so preflight answers carry the
	// same value as every other response.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		MaxAge:          12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed)
	})

	router.GET("/health", api.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/categories", api.HandleListCategories)
	router.GET("/categories/:category_id/questions", api.HandleCategoryQuestions)

	router.GET("/questions", api.HandleListQuestions)
	router.POST("/questions", api.HandleCreateQuestion)
	router.POST("/questions/filters", api.HandleSearchQuestions)
	router.DELETE("/questions/:id", api.HandleDeleteQuestion)

	router.POST("/quizzes", api.HandleQuizQuestion)

	return router
}
