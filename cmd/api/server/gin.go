package server

import (
	"net/http"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	ginrouter "graphql-user-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the HTTP server hosting the
// GraphQL endpoint.
func SetupGinServer(schema *graphqlgo.Schema, addr string, l *zap.Logger) *http.Server {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(schema, l)

	l.Info("HTTP server configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
