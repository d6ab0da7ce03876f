package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/mocks"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/server"
)

const jwtSecret = "router-test-secret-that-is-long-enough"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(t *testing.T, store *mocks.Store) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()

	return server.NewRouter(server.Deps{
		Logger:         logger,
		JWTSecret:      jwtSecret,
		AllowedOrigins: []string{"*"},
		MaxUploadBytes: 1 << 20,
		Store:          store,
		Storage:        &mocks.Storage{},
		AI:             &mocks.FashionAI{},
		Profiles:       &mocks.Profiles{},
		Verifier:       checkout.NewPhoneVerifier(checkout.NewMemoryStore(), time.Minute, logger),
		Payments:       checkout.NewPaymentSimulator(0, logger),
	})
}

func bearer(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t, &mocks.Store{})

	for _, path := range []string{"/health", "/health/ready", "/api/v1/catalog/colors", "/api/v1/catalog/options"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestRouter_RequiresAuth(t *testing.T) {
	router := newTestRouter(t, &mocks.Store{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PreflightSkipsAuth(t *testing.T) {
	router := newTestRouter(t, &mocks.Store{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyze", nil)
	req.Header.Set("Origin", "https://studio.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, x-client-info, apikey, content-type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_AuthenticatedRequest(t *testing.T) {
	store := &mocks.Store{}
	userID := "11111111-2222-3333-4444-555555555555"
	store.On("ListOrders", mock.Anything, mock.Anything).Return([]models.Order{}, nil)

	router := newTestRouter(t, store)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", bearer(t, userID))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orders":[]}`, w.Body.String())
	store.AssertExpectations(t)
}
