package delivery

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

const userIDKey = "userID"

// AuthRequired resolves the caller's identity from the Authorization
// header. An absent or rejected token is not surfaced as an error: the
// caller is redirected to the home route, matching the storefront's
// navigation-fallback behavior.
func AuthRequired(resolver domain.IdentityResolver, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			log.Warn("Middleware: Authorization header missing or malformed")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		userID, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Warnf("Middleware: Identity resolution failed: %v", err)
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a token is present but never
// blocks the request. Used by routes whose content merely varies with
// identity, like the navigation links.
func OptionalAuth(resolver domain.IdentityResolver, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			userID, err := resolver.Resolve(c.Request.Context(), token)
			if err == nil {
				c.Set(userIDKey, userID)
			} else if !errors.Is(err, domain.ErrUnauthenticated) {
				log.Warnf("Middleware: Optional identity resolution failed: %v", err)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// CurrentUserID returns the identity resolved by the auth middleware.
func CurrentUserID(c *gin.Context) string {
	userID, _ := c.Get(userIDKey)
	id, _ := userID.(string)
	return id
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		})
		entry.Info("Incoming request")

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		completedEntry := logger.WithFields(logrus.Fields{
			"status_code": statusCode,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"latency_ms":  latency.Milliseconds(),
		})
		if statusCode >= 500 {
			completedEntry.Error("Request completed with server error")
		} else if statusCode >= 400 {
			completedEntry.Warn("Request completed with client error")
		} else {
			completedEntry.Info("Request completed")
		}
	}
}
