package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"checklistapp/internal/core/telemetry"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation id, generating one when
// the client did not send its own.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)

		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func Metrics(metrics *telemetry.AppMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()

		if path == "" {
			path = "unmatched"
		}

		metrics.RecordRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))

		if operation := checklistOperation(c.Request.Method, path); operation != "" && c.Writer.Status() < 400 {
			metrics.RecordChecklistOperation(operation)
		}
	}
}

func checklistOperation(method, path string) string {
	switch {
	case method == "POST" && path == "/v1/checklist":
		return "create"
	case method == "GET" && path == "/v1/checklist":
		return "list"
	case method == "GET" && path == "/v1/checklist/:id":
		return "get"
	case method == "PUT" && path == "/v1/checklist/:id":
		return "update"
	case method == "DELETE" && path == "/v1/checklist/:id":
		return "delete"
	}

	return ""
}
