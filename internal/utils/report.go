package utils

import (
	"log"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestID"

// AbortWithServerError logs err, forwards it to Sentry and answers 500 with
// msg. Sentry is a no-op until sentry.Init has been called with a DSN.
func AbortWithServerError(c *gin.Context, msg string, err error) {
	requestID := c.GetString(RequestIDKey)
	log.Printf("%s %s [%s]: %s: %v", c.Request.Method, c.FullPath(), requestID, msg, err)

	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", requestID)
		scope.SetTag("route", c.FullPath())
		scope.SetRequest(c.Request)
		hub.CaptureException(err)
	})

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msg})
}
