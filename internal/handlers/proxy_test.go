package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/handlers"
	"stylecraft-backend/internal/mocks"
)

func newProxyRouter(ai *mocks.FashionAI) http.Handler {
	h := handlers.NewProxyHandler(ai)
	router := newRouter()
	router.POST("/analyze", h.Analyze)
	router.POST("/generate-design", h.GenerateDesign)
	return router
}

func TestProxy_AnalyzeReturnsUpstreamJSON(t *testing.T) {
	ai := &mocks.FashionAI{}
	raw := json.RawMessage(`{"item_name":"Wrap Dress","confidence":0.9,"product_matches":[]}`)
	ai.On("Analyze", mock.Anything, "https://cdn.example.com/dress.jpg").Return(raw, nil)

	w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/analyze", map[string]string{
		"imageUrl": " https://cdn.example.com/dress.jpg ",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(raw), w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	ai.AssertExpectations(t)
}

func TestProxy_AnalyzeRequiresImageURL(t *testing.T) {
	ai := &mocks.FashionAI{}

	for _, body := range []any{map[string]string{}, map[string]string{"imageUrl": "  "}, "not json"} {
		w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/analyze", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Image URL is required"}`, w.Body.String())
	}
	ai.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestProxy_GatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"rate limited", gateway.ErrRateLimited, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."},
		{"credits depleted", gateway.ErrCreditsDepleted, http.StatusPaymentRequired, "AI credits depleted. Please add credits to continue."},
		{"malformed", gateway.ErrMalformedResponse, http.StatusInternalServerError, "Failed to parse AI analysis result"},
		{"upstream failure", &gateway.APIError{StatusCode: 503, Body: "unavailable"}, http.StatusInternalServerError, "AI analysis failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &mocks.FashionAI{}
			ai.On("Analyze", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/analyze", map[string]string{"imageUrl": "https://x/y.jpg"})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w))
		})
	}
}

func TestProxy_GenerateDesign(t *testing.T) {
	ai := &mocks.FashionAI{}
	ai.On("GenerateDesign", mock.Anything, "Add puff sleeves", "https://x/y.jpg").
		Return(&gateway.DesignResult{ImageURL: "data:image/png;base64,AAAA", Description: "Puff sleeves"}, nil)

	w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/generate-design", map[string]string{
		"customizationPrompt": "Add puff sleeves",
		"originalImageUrl":    "https://x/y.jpg",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"imageUrl":"data:image/png;base64,AAAA","description":"Puff sleeves"}`, w.Body.String())
}

func TestProxy_GenerateDesignErrors(t *testing.T) {
	t.Run("missing prompt", func(t *testing.T) {
		ai := &mocks.FashionAI{}
		w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/generate-design", map[string]string{"originalImageUrl": "https://x/y.jpg"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Customization prompt is required", decodeError(t, w))
	})

	t.Run("no image", func(t *testing.T) {
		ai := &mocks.FashionAI{}
		ai.On("GenerateDesign", mock.Anything, "Make it red", "").Return(nil, gateway.ErrNoImage)

		w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/generate-design", map[string]string{"customizationPrompt": "Make it red"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "No image generated", decodeError(t, w))
	})

	t.Run("rate limited", func(t *testing.T) {
		ai := &mocks.FashionAI{}
		ai.On("GenerateDesign", mock.Anything, mock.Anything, mock.Anything).Return(nil, gateway.ErrRateLimited)

		w := doJSON(t, newProxyRouter(ai), http.MethodPost, "/generate-design", map[string]string{"customizationPrompt": "Make it red"})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}
