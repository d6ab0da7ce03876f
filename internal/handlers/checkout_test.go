package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/handlers"
	"stylecraft-backend/internal/mocks"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

const testPhone = "9876543210"

func newCheckoutRouter(store *mocks.Store) (http.Handler, *checkout.PhoneVerifier) {
	logger, _ := test.NewNullLogger()
	verifier := checkout.NewPhoneVerifier(checkout.NewMemoryStore(), 10*time.Minute, logger)

	h := handlers.NewCheckoutHandler(store, verifier)
	router := newRouter()
	router.POST("/checkout/otp/send", h.SendOTP)
	router.POST("/checkout/otp/verify", h.VerifyOTP)
	router.POST("/orders", h.CreateOrder)
	return router, verifier
}

func verifyPhone(t *testing.T, router http.Handler) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/checkout/otp/send", map[string]string{"phone": testPhone})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, router, http.MethodPost, "/checkout/otp/verify", map[string]string{"phone": testPhone, "otp": "000000"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func orderBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"address":          "12 MG Road",
		"city":             "Bengaluru",
		"state":            "Karnataka",
		"pincode":          "560001",
		"phone":            testPhone,
		"deliverySlot":     "9am-12pm",
		"deliveryDate":     time.Now().Add(48 * time.Hour).Format("2006-01-02"),
		"total_amount":     4999,
		"custom_design_id": uuid.NewString(),
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	return body
}

func TestOTP_SendAndVerify(t *testing.T) {
	router, verifier := newCheckoutRouter(&mocks.Store{})

	w := doJSON(t, router, http.MethodPost, "/checkout/otp/send", map[string]string{"phone": testPhone})
	require.Equal(t, http.StatusOK, w.Code)
	sent := decode[models.OTPResponse](t, w)
	assert.Equal(t, "sent", sent.Status)
	assert.False(t, sent.Verified)

	w = doJSON(t, router, http.MethodPost, "/checkout/otp/verify", map[string]string{"phone": testPhone, "otp": "123456"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.OTPResponse](t, w).Verified)

	ok, err := verifier.IsVerified(context.Background(), testUserID.String(), testPhone)
	require.NoError(t, err)
	assert.True(t, ok)

	// resending to the verified number keeps it verified
	w = doJSON(t, router, http.MethodPost, "/checkout/otp/send", map[string]string{"phone": testPhone})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "verified", decode[models.OTPResponse](t, w).Status)
}

func TestOTP_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		body      map[string]string
		wantError string
	}{
		{"short phone", "/checkout/otp/send", map[string]string{"phone": "98765"}, "please enter a valid 10-digit mobile number"},
		{"verify before send", "/checkout/otp/verify", map[string]string{"phone": testPhone, "otp": "123456"}, "please request an OTP first"},
		{"five digit code", "/checkout/otp/verify", map[string]string{"phone": testPhone, "otp": "12345"}, "please enter a valid 6-digit OTP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newCheckoutRouter(&mocks.Store{})
			w := doJSON(t, router, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w))
		})
	}
}

func TestCreateOrder_RequiresVerifiedPhone(t *testing.T) {
	store := &mocks.Store{}
	router, _ := newCheckoutRouter(store)

	w := doJSON(t, router, http.MethodPost, "/orders", orderBody(nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please verify your mobile number first", decodeError(t, w))
	store.AssertNotCalled(t, "GetCustomDesign", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_CustomDesign(t *testing.T) {
	store := &mocks.Store{}
	router, verifier := newCheckoutRouter(store)
	verifyPhone(t, router)

	designID := uuid.New()
	store.On("GetCustomDesign", mock.Anything, designID, testUserID).Return(&models.CustomDesign{ID: designID}, nil)
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == testUserID && o.OrderType == models.OrderTypeCustom &&
			o.Status == models.OrderStatusPending && o.CustomDesignID.UUID == designID && !o.ItemID.Valid
	})).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/orders", orderBody(map[string]any{
		"custom_design_id": designID.String(),
		"address":          "<i>12 MG Road</i>",
	}))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[models.OrderResponse](t, w)
	assert.Equal(t, "₹4,999", resp.AmountDisplay)
	assert.Equal(t, models.OrderStatusPending, resp.Status)
	require.NotNil(t, resp.ShippingAddress)
	assert.Equal(t, "12 MG Road", resp.ShippingAddress.Address)
	assert.Equal(t, "9am-12pm", resp.ShippingAddress.DeliverySlot)
	assert.Len(t, resp.ShortCode, 8)

	// the verification is spent on the order
	ok, err := verifier.IsVerified(context.Background(), testUserID.String(), testPhone)
	require.NoError(t, err)
	assert.False(t, ok)
	store.AssertExpectations(t)
}

func TestCreateOrder_StandardItem(t *testing.T) {
	store := &mocks.Store{}
	router, _ := newCheckoutRouter(store)
	verifyPhone(t, router)

	itemID := uuid.New()
	store.On("GetIdentifiedItem", mock.Anything, itemID, testUserID).Return(&models.IdentifiedItem{ID: itemID}, nil)
	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.OrderType == models.OrderTypeStandard && o.ItemID.UUID == itemID
	})).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/orders", orderBody(map[string]any{
		"custom_design_id": nil,
		"item_id":          itemID.String(),
		"total_amount":     125000,
	}))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "₹1,25,000", decode[models.OrderResponse](t, w).AmountDisplay)
}

func TestCreateOrder_ForeignDesign(t *testing.T) {
	store := &mocks.Store{}
	router, _ := newCheckoutRouter(store)
	verifyPhone(t, router)

	designID := uuid.New()
	store.On("GetCustomDesign", mock.Anything, designID, testUserID).Return(nil, supabase.ErrNotFound)

	w := doJSON(t, router, http.MethodPost, "/orders", orderBody(map[string]any{"custom_design_id": designID.String()}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_Validation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]any
		wantError string
	}{
		{"short pincode", map[string]any{"pincode": "5600"}, "pincode must be exactly 6 digits"},
		{"letters in phone", map[string]any{"phone": "98765abcde"}, "Please enter a valid 10-digit mobile number"},
		{"past delivery date", map[string]any{"deliveryDate": "2020-01-01"}, "deliveryDate must be a date (YYYY-MM-DD) that is today or later"},
		{"bad date format", map[string]any{"deliveryDate": "01/02/2030"}, "deliveryDate must be a date (YYYY-MM-DD) that is today or later"},
		{"missing city", map[string]any{"city": nil}, "city is required"},
		{"zero amount", map[string]any{"total_amount": 0}, "total_amount is required"},
		{"negative amount", map[string]any{"total_amount": -5}, "total_amount must be greater than 0"},
		{"nothing to order", map[string]any{"custom_design_id": nil}, "item_id or custom_design_id is required"},
		{"unknown slot", map[string]any{"deliverySlot": "midnight"}, "deliverySlot is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mocks.Store{}
			router, _ := newCheckoutRouter(store)

			w := doJSON(t, router, http.MethodPost, "/orders", orderBody(tt.overrides))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantError, decodeError(t, w))
			store.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}
