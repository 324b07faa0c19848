package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"graphql-user-service/internal/adapter/gin/middleware"
	graphqladapter "graphql-user-service/internal/adapter/graphql"
)

// SetupRouter configures and returns a Gin router with all routes and middleware.
func SetupRouter(schema *graphqlgo.Schema, log *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// Liveness endpoint
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Gin + graphql-go + MongoDB service running!")
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "graphql-user-service",
		})
	})

	// GraphQL endpoint: queries and mutations over POST,
	// interactive explorer over GET
	router.POST("/graphql", gin.WrapH(&relay.Handler{Schema: schema}))
	router.GET("/graphql", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", graphqladapter.GraphiQLPage())
	})

	return router
}
