package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"furls/dashboard/internal/apperr"
	"furls/dashboard/internal/config"
	"furls/dashboard/internal/models"
	"furls/dashboard/pkg/jwt"

	"github.com/gin-gonic/gin"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

const testKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

func withSecret(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := *config.Current()
	cfg.JWTSecret = "middleware-secret"
	config.AppConfig = &cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func lookup(_ context.Context, key string) (*models.User, error) {
	if key == testKey {
		u := &models.User{Username: "plugin-owner"}
		u.ID = 9
		return u, nil
	}
	return nil, apperr.Unauthorized("Invalid API key")
}

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/x", mw, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "scheme": c.GetString(ContextScheme)})
	})
	return r
}

func do(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	withSecret(t)
	token, err := jwt.GenerateToken(5, "alice")
	if err != nil {
		t.Fatal(err)
	}
	r := newRouter(AuthMiddleware())

	tests := []struct {
		name    string
		headers map[string]string
		code    int
		body    string
	}{
		{"valid", map[string]string{"Authorization": "Bearer " + token}, http.StatusOK, `"scheme":"bearer"`},
		{"lowercase scheme", map[string]string{"Authorization": "bearer " + token}, http.StatusOK, `"id":5`},
		{"missing", nil, http.StatusUnauthorized, "Authorization header required"},
		{"not bearer", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized, "Authorization header required"},
		{"garbage", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, "invalid_token"},
		{"api key is not a bearer token", map[string]string{"Authorization": "Bearer " + testKey}, http.StatusUnauthorized, "invalid_token"},
		{"api key header ignored", map[string]string{APIKeyHeader: testKey}, http.StatusUnauthorized, "Authorization header required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, tt.headers)
			if rec.Code != tt.code || !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("got %d %s, want %d containing %q", rec.Code, rec.Body.String(), tt.code, tt.body)
			}
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	withSecret(t)
	claims := jwt.Claims{
		UserID:   5,
		Username: "alice",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("middleware-secret"))
	if err != nil {
		t.Fatal(err)
	}
	rec := do(newRouter(AuthMiddleware()), map[string]string{"Authorization": "Bearer " + token})
	if rec.Code != http.StatusUnauthorized || !strings.Contains(rec.Body.String(), `"code":"token_expired"`) {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	withSecret(t)
	token, _ := jwt.GenerateToken(5, "alice")
	r := newRouter(APIKeyMiddleware(lookup))

	tests := []struct {
		name    string
		headers map[string]string
		code    int
		body    string
	}{
		{"valid key", map[string]string{APIKeyHeader: testKey}, http.StatusOK, `"scheme":"api_key"`},
		{"unknown key", map[string]string{APIKeyHeader: "deadbeefdeadbeef"}, http.StatusUnauthorized, "Invalid API key"},
		{"missing", nil, http.StatusUnauthorized, "API key required"},
		{"bearer token does not grant upload", map[string]string{"Authorization": "Bearer " + token}, http.StatusUnauthorized, "API key required"},
		{"key in Authorization is ignored", map[string]string{"Authorization": "Bearer " + testKey}, http.StatusUnauthorized, "API key required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, tt.headers)
			if rec.Code != tt.code || !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("got %d %s, want %d containing %q", rec.Code, rec.Body.String(), tt.code, tt.body)
			}
		})
	}
}

func TestAPIKeyMiddleware_LookupFailure(t *testing.T) {
	failing := func(context.Context, string) (*models.User, error) {
		return nil, apperr.Internal("db down", nil)
	}
	rec := do(newRouter(APIKeyMiddleware(failing)), map[string]string{APIKeyHeader: testKey})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", rec.Code)
	}
}

func TestEitherMiddleware(t *testing.T) {
	withSecret(t)
	token, _ := jwt.GenerateToken(5, "alice")
	r := newRouter(EitherMiddleware(lookup))

	if rec := do(r, map[string]string{APIKeyHeader: testKey}); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":9`) {
		t.Errorf("api key: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(r, map[string]string{"Authorization": "Bearer " + token}); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":5`) {
		t.Errorf("bearer: %d %s", rec.Code, rec.Body.String())
	}
	// A present but wrong key does not fall back to the bearer token.
	if rec := do(r, map[string]string{APIKeyHeader: "wrongwrongwrong", "Authorization": "Bearer " + token}); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad key with good token: %d", rec.Code)
	}
	if rec := do(r, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: %d", rec.Code)
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	withSecret(t)
	token, _ := jwt.GenerateToken(5, "alice")
	r := newRouter(OptionalAuthMiddleware())

	if rec := do(r, nil); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":0`) {
		t.Errorf("anonymous: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(r, map[string]string{"Authorization": "Bearer junk"}); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"id":0`) {
		t.Errorf("bad token: %d %s", rec.Code, rec.Body.String())
	}
	if rec := do(r, map[string]string{"Authorization": "Bearer " + token}); !strings.Contains(rec.Body.String(), `"id":5`) {
		t.Errorf("good token: %s", rec.Body.String())
	}
}

func TestKeyPrefix(t *testing.T) {
	if got := KeyPrefix(testKey); got != "01234567" {
		t.Errorf("KeyPrefix = %q", got)
	}
	if got := KeyPrefix("short"); got == "short" {
		t.Error("short keys must not be echoed")
	}
}
