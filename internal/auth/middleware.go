package auth

import (
	"errors"
	"net/http"
	"strings"

	"furls/dashboard/internal/metrics"
	"furls/dashboard/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middlewares in this package.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextScheme   = "authScheme"
)

// Authentication schemes recorded under ContextScheme.
const (
	SchemeBearer = "bearer"
	SchemeAPIKey = "api_key"
)

// AuthMiddleware guards dashboard routes with a bearer token. An expired token
// is reported with code "token_expired" so the client can drop its stored
// credentials and send the user back to login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			metrics.RecordAuthFailure(SchemeBearer)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		if !authenticateBearer(c, tokenString) {
			return
		}
		c.Next()
	}
}

// authenticateBearer validates the token and stores the identity on c. On
// failure it aborts c and returns false.
func authenticateBearer(c *gin.Context, tokenString string) bool {
	claims, err := jwt.ParseToken(tokenString)
	if err != nil {
		metrics.RecordAuthFailure(SchemeBearer)
		if errors.Is(err, jwt.ErrExpiredToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired", "code": "token_expired"})
			return false
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "code": "invalid_token"})
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUsername, claims.Username)
	c.Set(ContextScheme, SchemeBearer)
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// UserID returns the authenticated user id, if any.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// MustUserID returns the authenticated user id. Only call it behind one of
// the guarding middlewares.
func MustUserID(c *gin.Context) uint {
	id, _ := UserID(c)
	return id
}
