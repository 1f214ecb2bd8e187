package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body every failed request gets. Details is optional
// and never carries internal state for panic recoveries.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers panics that escape a handler and converts them into
// a structured 500. Tool invocations recover their own panics inside the
// planner; anything arriving here is a genuine server bug worth the full
// request context in the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("unhandled panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response and logs it with the
// request path so failed turns can be traced per endpoint.
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message,
		zap.String("details", details),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
	)
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
