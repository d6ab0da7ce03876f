package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"stylecraft-backend/internal/catalog"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
)

// CheckoutHandler covers the simulated mobile verification and the
// checkout submit that turns a verified session into a pending order.
type CheckoutHandler struct {
	store    OrderStore
	verifier PhoneVerifier
}

func NewCheckoutHandler(store OrderStore, verifier PhoneVerifier) *CheckoutHandler {
	return &CheckoutHandler{store: store, verifier: verifier}
}

// SendOTP godoc
// @Summary     Send a verification code
// @Description Starts mobile verification. The code is generated and logged, never delivered.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.SendOTPRequest true "Mobile number"
// @Success     200 {object} models.OTPResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /checkout/otp/send [post]
func (h *CheckoutHandler) SendOTP(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: checkout.ErrInvalidPhone.Error(), Message: validationMessage(err)})
		return
	}

	ctx := c.Request.Context()
	if err := h.verifier.SendCode(ctx, userID.String(), req.Phone); err != nil {
		writeOTPError(c, err)
		return
	}
	verified, err := h.verifier.IsVerified(ctx, userID.String(), req.Phone)
	if err != nil {
		writeOTPError(c, err)
		return
	}

	resp := models.OTPResponse{Phone: req.Phone, Status: "sent", Message: "OTP sent to your mobile number"}
	if verified {
		resp.Status, resp.Verified, resp.Message = "verified", true, "Mobile number already verified"
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyOTP godoc
// @Summary     Verify a code
// @Description Marks the mobile number verified. Only the shape of the code is checked.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.VerifyOTPRequest true "Mobile number and code"
// @Success     200 {object} models.OTPResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /checkout/otp/verify [post]
func (h *CheckoutHandler) VerifyOTP(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "phone and otp are required", Message: validationMessage(err)})
		return
	}

	if err := h.verifier.VerifyCode(c.Request.Context(), userID.String(), req.Phone, req.OTP); err != nil {
		writeOTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OTPResponse{
		Phone:    req.Phone,
		Status:   "verified",
		Verified: true,
		Message:  "Mobile number verified successfully",
	})
}

// CreateOrder godoc
// @Summary     Place an order
// @Description Validates the shipping details, requires a verified mobile number and creates a pending order.
// @Tags        checkout
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateOrderRequest true "Shipping details"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [post]
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationMessage(err)})
		return
	}
	if req.ItemID == "" && req.CustomDesignID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "item_id or custom_design_id is required"})
		return
	}
	if req.DeliverySlot != "" && !catalog.IsDeliverySlot(req.DeliverySlot) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "deliverySlot is invalid"})
		return
	}
	fabric := strings.ToLower(strings.TrimSpace(req.FabricPreference))
	if fabric != "" && !catalog.IsFabric(fabric) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported fabric"})
		return
	}

	ctx := c.Request.Context()
	verified, err := h.verifier.IsVerified(ctx, userID.String(), req.Phone)
	if err != nil {
		writeOTPError(c, err)
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Please verify your mobile number first"})
		return
	}

	order := &models.Order{
		ID:               uuid.New(),
		UserID:           userID,
		OrderType:        models.OrderTypeStandard,
		TotalAmount:      req.TotalAmount,
		FabricPreference: nullString(fabric),
		Status:           models.OrderStatusPending,
	}

	if req.CustomDesignID != "" {
		designID := uuid.MustParse(req.CustomDesignID)
		if _, err := h.store.GetCustomDesign(ctx, designID, userID); err != nil {
			writeStoreError(c, err, "design")
			return
		}
		order.OrderType = models.OrderTypeCustom
		order.CustomDesignID = uuid.NullUUID{UUID: designID, Valid: true}
	}
	if req.ItemID != "" {
		itemID := uuid.MustParse(req.ItemID)
		if _, err := h.store.GetIdentifiedItem(ctx, itemID, userID); err != nil {
			writeStoreError(c, err, "item")
			return
		}
		order.ItemID = uuid.NullUUID{UUID: itemID, Valid: true}
	}

	order.ShippingAddress, err = json.Marshal(models.ShippingAddress{
		Address:      sanitizeText(req.Address),
		City:         sanitizeText(req.City),
		State:        sanitizeText(req.State),
		Pincode:      req.Pincode,
		Phone:        req.Phone,
		DeliverySlot: req.DeliverySlot,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode shipping address", Message: err.Error()})
		return
	}
	if m := sanitizeMeasurements(req.Measurements); m != nil {
		if order.Measurements, err = json.Marshal(m); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode measurements", Message: err.Error()})
			return
		}
	}

	created, err := h.store.CreateOrder(ctx, order)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to create order")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create order",
			Message: err.Error(),
		})
		return
	}

	log := middleware.Logger(c).WithFields(logrus.Fields{"order_id": created.ID, "order_type": created.OrderType})
	if err := h.verifier.Consume(ctx, userID.String()); err != nil {
		log.WithError(err).Warn("failed to clear phone verification")
	}

	log.Info("order placed")
	c.JSON(http.StatusCreated, toOrderResponse(*created))
}

func writeOTPError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrInvalidPhone),
		errors.Is(err, checkout.ErrInvalidCode),
		errors.Is(err, checkout.ErrCodeNotSent),
		errors.Is(err, checkout.ErrPhoneMismatch),
		errors.Is(err, checkout.ErrNotVerified):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		middleware.Logger(c).WithError(err).Error("verification store failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to verify mobile number",
			Message: err.Error(),
		})
	}
}
