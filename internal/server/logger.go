// file: internal/server/logger.go
// version: 1.1.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"fmt"
	"log"
	"time"
)

// OperationLogger tracks the lifecycle of a handler operation
type OperationLogger struct {
	handler   string
	method    string
	path      string
	startTime time.Time
	requestID string
}

// NewOperationLogger creates a new operation logger
func NewOperationLogger(handler, method, path, requestID string) *OperationLogger {
	return &OperationLogger{
		handler:   handler,
		method:    method,
		path:      path,
		startTime: time.Now(),
		requestID: requestID,
	}
}

// LogStart logs the start of the operation
func (ol *OperationLogger) LogStart() {
	log.Printf("[INFO] [START] %s %s [request-id: %s]", ol.method, ol.path, ol.requestID)
}

// LogSuccess logs the successful completion of the operation
func (ol *OperationLogger) LogSuccess(statusCode int) {
	duration := time.Since(ol.startTime)
	log.Printf("[INFO] [SUCCESS] %s %s (%d) in %v [request-id: %s]",
		ol.method, ol.path, statusCode, duration, ol.requestID)
}

// LogError logs an error that occurred during the operation
func (ol *OperationLogger) LogError(statusCode int, err error) {
	duration := time.Since(ol.startTime)
	log.Printf("[ERROR] [FAILED] %s %s (%d) in %v: %v [request-id: %s]",
		ol.method, ol.path, statusCode, duration, err, ol.requestID)
}

// LogDebug logs a debug message scoped to the handler
func (ol *OperationLogger) LogDebug(message string) {
	log.Printf("[DEBUG] %s: %s [request-id: %s]", ol.handler, message, ol.requestID)
}

// LogWarning logs a warning message scoped to the handler
func (ol *OperationLogger) LogWarning(message string) {
	log.Printf("[WARN] %s: %s [request-id: %s]", ol.handler, message, ol.requestID)
}

// LogDetail formats and logs a contextual key/value pair at debug level
func (ol *OperationLogger) LogDetail(key string, value any) {
	ol.LogDebug(fmt.Sprintf("%s=%v", key, value))
}
