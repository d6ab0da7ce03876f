package handlers

import (
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from user or model supplied text before it is
// stored.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + label + " id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeStoreError answers with 404 for missing rows and 500 otherwise.
func writeStoreError(c *gin.Context, err error, what string) {
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: what + " not found"})
		return
	}
	middleware.Logger(c).WithError(err).Errorf("failed to load %s", what)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "failed to load " + what,
		Message: err.Error(),
	})
}

// writeGatewayError maps AI gateway failures onto the proxy error contract:
// a single "error" field and 429, 402 or 500.
func writeGatewayError(c *gin.Context, err error, fallback string) {
	status, msg := http.StatusInternalServerError, fallback

	switch {
	case errors.Is(err, gateway.ErrRateLimited):
		status, msg = http.StatusTooManyRequests, "Rate limit exceeded. Please try again later."
	case errors.Is(err, gateway.ErrCreditsDepleted):
		status, msg = http.StatusPaymentRequired, "AI credits depleted. Please add credits to continue."
	case errors.Is(err, gateway.ErrMalformedResponse):
		msg = "Failed to parse AI analysis result"
	case errors.Is(err, gateway.ErrEmptyResponse):
		msg = "No response from AI"
	case errors.Is(err, gateway.ErrNoImage):
		msg = "No image generated"
	case errors.Is(err, gateway.ErrNotConfigured):
		msg = "AI gateway is not configured"
	}

	middleware.Logger(c).WithError(err).WithField("status", status).Error("AI gateway call failed")
	c.JSON(status, models.ErrorResponse{Error: msg})
}
