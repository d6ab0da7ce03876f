package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylecraft-backend/internal/middleware"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newAuthRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(testSecret))
	router.GET("/test", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		assert.True(t, exists)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func serve(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	w := serve(newAuthRouter(t), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "not a jwt", header: "Bearer invalid-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty token", header: "Bearer   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(newAuthRouter(t), tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := serve(newAuthRouter(t), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-123"}`, w.Body.String())
}

func TestAuthMiddleware_URLEncodedToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := serve(newAuthRouter(t), "Bearer "+url.QueryEscape(token))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		key     []byte
		claims  jwt.MapClaims
		message string
	}{
		{
			name:    "expired",
			key:     []byte(testSecret),
			claims:  jwt.MapClaims{"sub": "user-123", "exp": time.Now().Add(-time.Hour).Unix()},
			message: "token has expired",
		},
		{
			name:    "wrong secret",
			key:     []byte("another-secret"),
			claims:  jwt.MapClaims{"sub": "user-123", "exp": time.Now().Add(time.Hour).Unix()},
			message: "token signature is invalid",
		},
		{
			name:    "no expiry",
			key:     []byte(testSecret),
			claims:  jwt.MapClaims{"sub": "user-123"},
			message: "token is missing required claims",
		},
		{
			name:    "no subject",
			key:     []byte(testSecret),
			claims:  jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()},
			message: "missing user id in token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, jwt.SigningMethodHS256, tt.key, tt.claims)
			w := serve(newAuthRouter(t), "Bearer "+token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestAuthMiddleware_RejectsOtherAlgorithms(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := serve(newAuthRouter(t), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
