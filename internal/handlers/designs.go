package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"stylecraft-backend/internal/catalog"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/media"
	"stylecraft-backend/internal/middleware"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

// DesignHandler generates customized versions of identified items and keeps
// the results.
type DesignHandler struct {
	store   DesignStore
	storage ObjectStorage
	ai      FashionAI
}

func NewDesignHandler(store DesignStore, storage ObjectStorage, ai FashionAI) *DesignHandler {
	return &DesignHandler{store: store, storage: storage, ai: ai}
}

// CreateDesign godoc
// @Summary     Customize an item
// @Description Generates a custom design from the item's photo and a prompt, with optional fabric and measurements.
// @Tags        designs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       item_id path string true "Item ID (UUID)"
// @Param       request body models.CreateDesignRequest true "Customization"
// @Success     201 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     402 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /items/{item_id}/designs [post]
func (h *DesignHandler) CreateDesign(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id", "item")
	if !ok {
		return
	}

	var req models.CreateDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Customization prompt is required", Message: validationMessage(err)})
		return
	}
	prompt := sanitizeText(req.CustomizationPrompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Customization prompt is required"})
		return
	}
	fabric := strings.ToLower(strings.TrimSpace(req.FabricPreference))
	if fabric != "" && !catalog.IsFabric(fabric) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported fabric", Message: "fabric_preference must be one of the catalog fabrics"})
		return
	}

	var measurements json.RawMessage
	if m := sanitizeMeasurements(req.Measurements); m != nil {
		var err error
		if measurements, err = json.Marshal(m); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to encode measurements", Message: err.Error()})
			return
		}
	}

	h.generate(c, userID, itemID, designInput{
		storedPrompt: prompt,
		modelPrompt:  buildDesignPrompt(prompt, fabric, req.Measurements),
		fabric:       fabric,
		measurements: measurements,
		modifications: func(result *gateway.DesignResult) map[string]any {
			return map[string]any{"type": "custom", "description": sanitizeText(result.Description)}
		},
	})
}

// Recolor godoc
// @Summary     Change the color of an item
// @Description Generates the item in a catalog color (name or hex code).
// @Tags        designs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       item_id path string true "Item ID (UUID)"
// @Param       request body models.RecolorRequest true "Color"
// @Success     201 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     402 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     429 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /items/{item_id}/recolor [post]
func (h *DesignHandler) Recolor(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "item_id", "item")
	if !ok {
		return
	}

	var req models.RecolorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "color is required", Message: validationMessage(err)})
		return
	}
	color, found := catalog.LookupColor(req.Color)
	if !found {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown color", Message: "pick one of the catalog colors"})
		return
	}

	prompt := fmt.Sprintf("Change the color to %s (%s)", color.Name, color.Hex)
	h.generate(c, userID, itemID, designInput{
		storedPrompt: prompt,
		modelPrompt: fmt.Sprintf("Change the color of this clothing item to %s (hex %s). Keep the same style, cut, fabric and details.",
			color.Name, color.Hex),
		modifications: func(*gateway.DesignResult) map[string]any {
			return map[string]any{"type": "color", "color": color.Name, "hex": color.Hex}
		},
	})
}

// ListDesigns godoc
// @Summary     List custom designs
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DesignListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /designs [get]
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	designs, err := h.store.ListCustomDesigns(c.Request.Context(), userID)
	if err != nil {
		writeStoreError(c, err, "designs")
		return
	}

	c.JSON(http.StatusOK, models.DesignListResponse{Designs: toDesignList(designs)})
}

// GetDesign godoc
// @Summary     Get a custom design
// @Tags        designs
// @Produce     json
// @Security    Bearer
// @Param       design_id path string true "Design ID (UUID)"
// @Success     200 {object} models.DesignResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /designs/{design_id} [get]
func (h *DesignHandler) GetDesign(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	designID, ok := parseIDParam(c, "design_id", "design")
	if !ok {
		return
	}

	design, err := h.store.GetCustomDesign(c.Request.Context(), designID, userID)
	if err != nil {
		writeStoreError(c, err, "design")
		return
	}

	c.JSON(http.StatusOK, toDesignResponse(*design))
}

type designInput struct {
	storedPrompt  string
	modelPrompt   string
	fabric        string
	measurements  json.RawMessage
	modifications func(*gateway.DesignResult) map[string]any
}

// generate runs the image model on the item's original photo and stores
// the resulting design.
func (h *DesignHandler) generate(c *gin.Context, userID, itemID uuid.UUID, in designInput) {
	ctx := c.Request.Context()

	item, err := h.store.GetIdentifiedItem(ctx, itemID, userID)
	if err != nil {
		writeStoreError(c, err, "item")
		return
	}
	upload, err := h.store.GetUpload(ctx, item.UploadID, userID)
	if err != nil {
		writeStoreError(c, err, "upload")
		return
	}

	result, err := h.ai.GenerateDesign(ctx, in.modelPrompt, upload.ImageURL)
	if err != nil {
		writeGatewayError(c, err, "Design generation failed")
		return
	}

	designID := uuid.New()
	log := middleware.Logger(c).WithFields(logrus.Fields{"item_id": itemID, "design_id": designID})

	imageURL, err := h.storeGeneratedImage(userID, designID, result.ImageURL)
	if err != nil {
		log.WithError(err).Error("failed to store generated design")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store generated design",
			Message: err.Error(),
		})
		return
	}

	modifications, err := json.Marshal(in.modifications(result))
	if err != nil {
		log.WithError(err).Error("failed to encode design modifications")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save design",
			Message: err.Error(),
		})
		return
	}

	design, err := h.store.CreateCustomDesign(ctx, &models.CustomDesign{
		ID:                  designID,
		UserID:              userID,
		OriginalItemID:      uuid.NullUUID{UUID: item.ID, Valid: true},
		CustomizationPrompt: in.storedPrompt,
		CustomImageURL:      nullString(imageURL),
		FabricPreference:    nullString(in.fabric),
		Measurements:        in.measurements,
		Modifications:       modifications,
		Status:              models.DesignStatusGenerated,
	})
	if err != nil {
		log.WithError(err).Error("failed to save custom design")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save design",
			Message: err.Error(),
		})
		return
	}

	log.Info("custom design generated")
	c.JSON(http.StatusCreated, toDesignResponse(*design))
}

// storeGeneratedImage uploads inline data URLs returned by the model and
// passes hosted URLs through unchanged.
func (h *DesignHandler) storeGeneratedImage(userID, designID uuid.UUID, imageURL string) (string, error) {
	if !media.IsDataURL(imageURL) {
		return imageURL, nil
	}

	declared, data, err := media.ParseDataURL(imageURL)
	if err != nil {
		return "", err
	}
	mimeType, ext, err := media.DetectImage(data)
	if err != nil {
		return "", fmt.Errorf("generated %s: %w", declared, err)
	}

	return h.storage.Upload(supabase.DesignPath(userID, designID, ext), mimeType, data)
}

func sanitizeMeasurements(m *models.Measurements) *models.Measurements {
	if m == nil {
		return nil
	}
	out := models.Measurements{
		Chest:  sanitizeText(m.Chest),
		Waist:  sanitizeText(m.Waist),
		Hips:   sanitizeText(m.Hips),
		Length: sanitizeText(m.Length),
	}
	if out == (models.Measurements{}) {
		return nil
	}
	return &out
}

func buildDesignPrompt(prompt, fabric string, m *models.Measurements) string {
	var b strings.Builder
	b.WriteString(prompt)
	if fabric != "" {
		fmt.Fprintf(&b, ". Fabric: %s", fabric)
	}
	if m = sanitizeMeasurements(m); m != nil {
		var parts []string
		for _, p := range []struct{ name, value string }{
			{"chest", m.Chest}, {"waist", m.Waist}, {"hips", m.Hips}, {"length", m.Length},
		} {
			if p.value != "" {
				parts = append(parts, p.name+" "+p.value)
			}
		}
		fmt.Fprintf(&b, ". Measurements: %s", strings.Join(parts, ", "))
	}
	return b.String()
}
