package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/handlers"
	"stylecraft-backend/internal/mocks"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

func newItemRouter(store *mocks.Store, ai *mocks.FashionAI) http.Handler {
	h := handlers.NewItemHandler(store, ai)
	router := newRouter()
	router.POST("/uploads/:upload_id/analyze", h.AnalyzeUpload)
	router.GET("/items/:item_id", h.GetItem)
	return router
}

func TestAnalyzeUpload(t *testing.T) {
	store := &mocks.Store{}
	ai := &mocks.FashionAI{}
	upload := &models.UploadedImage{ID: uuid.New(), UserID: testUserID, ImageURL: "https://cdn.example.com/u.png"}

	store.On("GetUpload", mock.Anything, upload.ID, testUserID).Return(upload, nil)
	ai.On("Analyze", mock.Anything, upload.ImageURL).Return(json.RawMessage(`{
		"item_name": "<b>Wrap Dress</b>",
		"category": "dress",
		"description": "Midi wrap dress",
		"color": "Navy",
		"style": "elegant",
		"confidence": 0.92,
		"product_matches": [{"name": "Wrap Midi", "brand": "Acme", "price": 49.5, "url": "https://shop.example.com/1", "similarity": 0.8}]
	}`), nil)

	var saved *models.IdentifiedItem
	store.On("CreateIdentifiedItem", mock.Anything, mock.AnythingOfType("*models.IdentifiedItem")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.IdentifiedItem) }).
		Return(nil)
	store.On("UpdateUploadStatus", mock.Anything, upload.ID, testUserID, models.UploadStatusAnalyzed).Return(nil)

	w := doJSON(t, newItemRouter(store, ai), http.MethodPost, "/uploads/"+upload.ID.String()+"/analyze", nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[models.ItemResponse](t, w)
	assert.Equal(t, "Wrap Dress", resp.ItemName)
	assert.Equal(t, upload.ImageURL, resp.ImageURL)
	require.NotNil(t, resp.Confidence)
	assert.InDelta(t, 0.92, *resp.Confidence, 1e-9)

	require.NotNil(t, saved)
	assert.Equal(t, upload.ID, saved.UploadID)
	assert.Contains(t, string(saved.ProductMatches), `"price":"49.5"`)
	store.AssertExpectations(t)
}

func TestAnalyzeUpload_NumbersAsStrings(t *testing.T) {
	store := &mocks.Store{}
	ai := &mocks.FashionAI{}
	upload := &models.UploadedImage{ID: uuid.New(), UserID: testUserID, ImageURL: "https://cdn.example.com/u.png"}

	store.On("GetUpload", mock.Anything, upload.ID, testUserID).Return(upload, nil)
	ai.On("Analyze", mock.Anything, upload.ImageURL).Return(json.RawMessage(`{
		"item_name": "Blue Dress",
		"confidence": "0.95",
		"product_matches": [{"name": "Midi Dress", "brand": "Zara", "price": "$49", "similarity": "0.9"}]
	}`), nil)

	var saved *models.IdentifiedItem
	store.On("CreateIdentifiedItem", mock.Anything, mock.AnythingOfType("*models.IdentifiedItem")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.IdentifiedItem) }).
		Return(nil)
	store.On("UpdateUploadStatus", mock.Anything, upload.ID, testUserID, models.UploadStatusAnalyzed).Return(nil)

	w := doJSON(t, newItemRouter(store, ai), http.MethodPost, "/uploads/"+upload.ID.String()+"/analyze", nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[models.ItemResponse](t, w)
	require.NotNil(t, resp.Confidence)
	assert.InDelta(t, 0.95, *resp.Confidence, 1e-9)

	require.NotNil(t, saved)
	assert.Contains(t, string(saved.ProductMatches), `"similarity":0.9`)
	store.AssertExpectations(t)
}

func TestAnalyzeUpload_Failures(t *testing.T) {
	uploadID := uuid.New()

	t.Run("unknown upload", func(t *testing.T) {
		store := &mocks.Store{}
		ai := &mocks.FashionAI{}
		store.On("GetUpload", mock.Anything, uploadID, testUserID).Return(nil, supabase.ErrNotFound)

		w := doJSON(t, newItemRouter(store, ai), http.MethodPost, "/uploads/"+uploadID.String()+"/analyze", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		ai.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
	})

	t.Run("credits depleted", func(t *testing.T) {
		store := &mocks.Store{}
		ai := &mocks.FashionAI{}
		store.On("GetUpload", mock.Anything, uploadID, testUserID).Return(&models.UploadedImage{ID: uploadID, ImageURL: "https://x/y.png"}, nil)
		ai.On("Analyze", mock.Anything, "https://x/y.png").Return(nil, gateway.ErrCreditsDepleted)

		w := doJSON(t, newItemRouter(store, ai), http.MethodPost, "/uploads/"+uploadID.String()+"/analyze", nil)

		assert.Equal(t, http.StatusPaymentRequired, w.Code)
		store.AssertNotCalled(t, "CreateIdentifiedItem", mock.Anything, mock.Anything)
	})

	t.Run("analysis of the wrong shape", func(t *testing.T) {
		store := &mocks.Store{}
		ai := &mocks.FashionAI{}
		store.On("GetUpload", mock.Anything, uploadID, testUserID).Return(&models.UploadedImage{ID: uploadID, ImageURL: "https://x/y.png"}, nil)
		ai.On("Analyze", mock.Anything, "https://x/y.png").Return(json.RawMessage(`{"confidence":"high"}`), nil)

		w := doJSON(t, newItemRouter(store, ai), http.MethodPost, "/uploads/"+uploadID.String()+"/analyze", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		store.AssertNotCalled(t, "CreateIdentifiedItem", mock.Anything, mock.Anything)
	})
}

func TestGetItem(t *testing.T) {
	store := &mocks.Store{}
	item := &models.IdentifiedItem{ID: uuid.New(), UserID: testUserID, UploadID: uuid.New()}
	store.On("GetIdentifiedItem", mock.Anything, item.ID, testUserID).Return(item, nil)
	store.On("GetUpload", mock.Anything, item.UploadID, testUserID).Return(nil, supabase.ErrNotFound)

	w := doJSON(t, newItemRouter(store, &mocks.FashionAI{}), http.MethodGet, "/items/"+item.ID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.ItemResponse](t, w)
	assert.Equal(t, item.ID.String(), resp.ID)
	assert.JSONEq(t, `[]`, string(resp.ProductMatches))
}
