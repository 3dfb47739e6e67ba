package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/server/auth"
	"storefront/internal/server/models"
)

const (
	requestIDKey   = "request_id"
	currentUserKey = "current_user"
)

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-Id", id)
		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request handled",
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// authMiddleware enforces bearer authentication: it extracts the token from
// the Authorization header, validates it, resolves the subject to an active
// user, and stores that user in the request context. Every failure mode is
// reported identically so callers cannot probe which step rejected them.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			s.abortUnauthenticated(c)
			return
		}

		subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
		if err != nil {
			s.abortUnauthenticated(c)
			return
		}

		user, err := s.users.GetByUsername(c.Request.Context(), subject)
		if err != nil || !user.IsActive {
			s.abortUnauthenticated(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func extractBearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (s *Server) abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "could not validate credentials"})
}

// currentUser returns the identity resolved by authMiddleware. Handlers
// behind the middleware may assume it is present.
func currentUser(c *gin.Context) *models.User {
	return c.MustGet(currentUserKey).(*models.User)
}
