package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
)

// ProxyHandler exposes the two AI gateway calls without persisting
// anything.
type ProxyHandler struct {
	ai FashionAI
}

func NewProxyHandler(ai FashionAI) *ProxyHandler {
	return &ProxyHandler{ai: ai}
}

// Analyze godoc
// @Summary     Analyze a fashion image
// @Description Sends the image to the analysis model and returns its JSON answer unchanged (code fences removed).
// @Tags        ai
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.AnalyzeRequest true "Image to analyze"
// @Success     200 {object} gateway.FashionAnalysis
// @Failure     400 {object} models.ErrorResponse
// @Failure     402 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /analyze [post]
func (h *ProxyHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Image URL is required"})
		return
	}

	raw, err := h.ai.Analyze(c.Request.Context(), strings.TrimSpace(req.ImageURL))
	if err != nil {
		writeGatewayError(c, err, "AI analysis failed")
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// GenerateDesign godoc
// @Summary     Generate a custom design
// @Description Asks the image model for a design from a prompt, optionally based on an existing image.
// @Tags        ai
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateDesignRequest true "Customization prompt"
// @Success     200 {object} gateway.DesignResult
// @Failure     400 {object} models.ErrorResponse
// @Failure     402 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /generate-design [post]
func (h *ProxyHandler) GenerateDesign(c *gin.Context) {
	var req models.GenerateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CustomizationPrompt) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Customization prompt is required"})
		return
	}

	result, err := h.ai.GenerateDesign(c.Request.Context(),
		strings.TrimSpace(req.CustomizationPrompt), strings.TrimSpace(req.OriginalImageURL))
	if err != nil {
		writeGatewayError(c, err, "Design generation failed")
		return
	}

	middleware.Logger(c).Info("design generated")
	c.JSON(http.StatusOK, result)
}
