package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gatherhub/server/internal/helpers"
	"github.com/gatherhub/server/internal/models"
)

// actorKey is the gin context key holding the resolved request identity.
const actorKey = "actor"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// ResolveActor classifies the caller as exactly one actor kind from the
// session cookie, once per request. It never aborts: a missing, expired or
// tampered token resolves to guest, and capability checks happen in the
// services against the resolved actor.
func ResolveActor(secret string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := models.Guest()

		if token, err := c.Cookie(helpers.SessionCookie); err == nil && token != "" {
			claims, err := helpers.ValidateSession(secret, token)
			if err != nil {
				logger.Debug("session token rejected", "error", err)
			} else {
				actor = claims.Actor()
			}
		}

		// The registration-by-email marker only counts when no login
		// session is present.
		if actor.Kind == models.ActorGuest {
			if token, err := c.Cookie(helpers.RegistrantCookie); err == nil && token != "" {
				if claims, err := helpers.ValidateSession(secret, token); err == nil {
					if marker := claims.Actor(); marker.Kind == models.ActorRegistrant {
						actor = marker
					}
				}
			}
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the identity resolved for this request, guest when the
// resolver has not run.
func ActorFrom(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Guest()
}
