package service

import (
	"context"
	"log"
)

// Logger provides request-scoped logging for the admin service
type Logger struct {
	requestID string
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	// Try to get request ID from context (set by middleware)
	requestID := "unknown"
	if rid, ok := ctx.Value("request_id").(string); ok && rid != "" {
		requestID = rid
	}
	return &Logger{requestID: requestID}
}

func (l *Logger) LogError(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	log.Printf("[warn] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
