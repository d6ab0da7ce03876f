package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"stylecraft-backend/internal/catalog"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
)

type OrdersHandler struct {
	store    OrderStore
	payments PaymentProcessor
}

func NewOrdersHandler(store OrderStore, payments PaymentProcessor) *OrdersHandler {
	return &OrdersHandler{store: store, payments: payments}
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns the caller's orders, newest first
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	orders, err := h.store.ListOrders(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err, "orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{Orders: toOrderList(orders)})
}

// GetOrder godoc
// @Summary     Get an order
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /orders/{order_id} [get]
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "order_id", "order")
	if !ok {
		return
	}

	order, err := h.store.GetOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		writeStoreError(c, err, "order")
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// PayOrder godoc
// @Summary     Pay for an order
// @Description Simulates payment with the chosen method and confirms the order. Paying again leaves it confirmed.
// @Tags        orders
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.PayOrderRequest true "Payment method: card, upi, netbanking or wallet"
// @Success     200 {object} models.PaymentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     408 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/pay [post]
func (h *OrdersHandler) PayOrder(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "order_id", "order")
	if !ok {
		return
	}

	var req models.PayOrderRequest
	// an empty body falls through to the payment method check
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if _, known := catalog.PaymentMethod(req.PaymentMethod); !known {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Please select a payment method"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetOrder(ctx, orderID, userID); err != nil {
		writeStoreError(c, err, "order")
		return
	}

	receipt, err := h.payments.Process(ctx, req.PaymentMethod)
	switch {
	case errors.Is(err, checkout.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Please select a payment method"})
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{Error: "payment cancelled", Message: err.Error()})
		return
	case err != nil:
		middleware.Logger(c).WithError(err).Error("payment failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "payment failed", Message: err.Error()})
		return
	}

	order, err := h.store.ConfirmOrder(ctx, orderID, userID)
	if err != nil {
		writeStoreError(c, err, "order")
		return
	}

	middleware.Logger(c).WithField("order_id", order.ID).WithField("method", receipt.Method.ID).Info("order confirmed")
	c.JSON(http.StatusOK, models.PaymentResponse{
		Order:              toOrderResponse(*order),
		PaymentMethod:      receipt.Method.ID,
		PaymentMethodLabel: receipt.Method.Label,
		Message:            "Payment successful",
	})
}
