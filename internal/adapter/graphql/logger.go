package graphql

import (
	"context"

	"go.uber.org/zap"
)

// panicLogger routes resolver panics recovered by the GraphQL library
// into the application's structured logger.
type panicLogger struct {
	log *zap.Logger
}

// LogPanic implements the graphql-go log.Logger interface.
func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("graphql resolver panic",
		zap.Any("panic", value),
		zap.Stack("stack"),
	)
}
