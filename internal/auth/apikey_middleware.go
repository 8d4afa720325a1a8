package auth

import (
	"context"
	"net/http"
	"strings"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/metrics"
	"furls/dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the plugin's API key. Bearer tokens are never read from
// it and API keys are never read from Authorization.
const APIKeyHeader = "X-API-Key"

// APIKeyLookup resolves an API key to its owner. It returns an Unauthorized
// *apperr.Error for unknown keys.
type APIKeyLookup func(ctx context.Context, key string) (*models.User, error)

// APIKeyMiddleware guards plugin routes with an API key.
func APIKeyMiddleware(lookup APIKeyLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" {
			metrics.RecordAuthFailure(SchemeAPIKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}
		if !authenticateAPIKey(c, lookup, key) {
			return
		}
		c.Next()
	}
}

// EitherMiddleware accepts an API key when the header is present and a bearer
// token otherwise. Used by the endpoints both clients poll.
func EitherMiddleware(lookup APIKeyLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := strings.TrimSpace(c.GetHeader(APIKeyHeader)); key != "" {
			if !authenticateAPIKey(c, lookup, key) {
				return
			}
			c.Next()
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key or bearer token required"})
			return
		}
		if !authenticateBearer(c, tokenString) {
			return
		}
		c.Next()
	}
}

func authenticateAPIKey(c *gin.Context, lookup APIKeyLookup, key string) bool {
	user, err := lookup(c.Request.Context(), key)
	if err != nil {
		log := logging.Ctx(c.Request.Context())
		if apperr.Is(err, apperr.KindUnauthorized) {
			metrics.RecordAuthFailure(SchemeAPIKey)
			log.Warn().
				Str("key_prefix", KeyPrefix(key)).
				Str("client_ip", c.ClientIP()).
				Msg("api key rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return false
		}
		log.Error().Err(err).Msg("api key lookup failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return false
	}

	logging.Ctx(c.Request.Context()).Info().
		Uint("user_id", user.ID).
		Str("username", user.Username).
		Str("client_ip", c.ClientIP()).
		Str("path", c.FullPath()).
		Msg("api key accepted")

	c.Set(ContextUserID, user.ID)
	c.Set(ContextUsername, user.Username)
	c.Set(ContextScheme, SchemeAPIKey)
	return true
}

// KeyPrefix returns the first 8 characters of a key for logs. Keys too short
// to be real are not echoed at all.
func KeyPrefix(key string) string {
	if len(key) <= 8 {
		return "[short]"
	}
	return key[:8]
}
