package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

// ItemHandler runs the analysis of a stored upload and persists the result.
type ItemHandler struct {
	store ItemStore
	ai    FashionAI
}

func NewItemHandler(store ItemStore, ai FashionAI) *ItemHandler {
	return &ItemHandler{store: store, ai: ai}
}

// AnalyzeUpload godoc
// @Summary     Analyze an upload
// @Description Identifies the garment in an upload, stores the identified item and marks the upload analyzed.
// @Tags        items
// @Produce     json
// @Security    Bearer
// @Param       upload_id path string true "Upload ID (UUID)"
// @Success     201 {object} models.ItemResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     402 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /uploads/{upload_id}/analyze [post]
func (h *ItemHandler) AnalyzeUpload(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	uploadID, ok := parseIDParam(c, "upload_id", "upload")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	upload, err := h.store.GetUpload(ctx, uploadID, userID)
	if err != nil {
		writeStoreError(c, err, "upload")
		return
	}

	raw, err := h.ai.Analyze(ctx, upload.ImageURL)
	if err != nil {
		writeGatewayError(c, err, "AI analysis failed")
		return
	}

	analysis, err := gateway.DecodeAnalysis(raw)
	if err != nil {
		writeGatewayError(c, err, "AI analysis failed")
		return
	}

	matches, err := json.Marshal(lo.Map(analysis.ProductMatches, func(m gateway.ProductMatch, _ int) gateway.ProductMatch {
		m.Name = sanitizeText(m.Name)
		m.Brand = sanitizeText(m.Brand)
		m.Price = gateway.LooseText(sanitizeText(string(m.Price)))
		return m
	}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode product matches", Message: err.Error()})
		return
	}

	item, err := h.store.CreateIdentifiedItem(ctx, &models.IdentifiedItem{
		ID:             uuid.New(),
		UserID:         userID,
		UploadID:       upload.ID,
		ItemName:       nullString(sanitizeText(analysis.ItemName)),
		Category:       nullString(sanitizeText(analysis.Category)),
		Description:    nullString(sanitizeText(analysis.Description)),
		Color:          nullString(sanitizeText(analysis.Color)),
		Style:          nullString(sanitizeText(analysis.Style)),
		AIConfidence:   sql.NullFloat64{Float64: float64(analysis.Confidence), Valid: analysis.Confidence > 0},
		ProductMatches: matches,
	})
	if err != nil {
		middleware.Logger(c).WithError(err).Error("failed to save identified item")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save analysis",
			Message: err.Error(),
		})
		return
	}

	if err := h.store.UpdateUploadStatus(ctx, upload.ID, userID, models.UploadStatusAnalyzed); err != nil {
		// the item is stored; a stale status flag only affects the upload list
		middleware.Logger(c).WithError(err).Warn("failed to mark upload analyzed")
	}

	c.JSON(http.StatusCreated, toItemResponse(*item, upload.ImageURL))
}

// GetItem godoc
// @Summary     Get an identified item
// @Tags        items
// @Produce     json
// @Security    Bearer
// @Param       item_id path string true "Item ID (UUID)"
// @Success     200 {object} models.ItemResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /items/{item_id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id", "item")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	item, err := h.store.GetIdentifiedItem(ctx, itemID, userID)
	if err != nil {
		writeStoreError(c, err, "item")
		return
	}

	imageURL := ""
	if upload, err := h.store.GetUpload(ctx, item.UploadID, userID); err == nil {
		imageURL = upload.ImageURL
	} else if !errors.Is(err, supabase.ErrNotFound) {
		middleware.Logger(c).WithError(err).Warn("failed to load upload of item")
	}

	c.JSON(http.StatusOK, toItemResponse(*item, imageURL))
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
