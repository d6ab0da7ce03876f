package handlers

import (
	"encoding/json"

	"github.com/samber/lo"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/models"
)

func toUploadResponse(u models.UploadedImage) models.UploadResponse {
	return models.UploadResponse{
		ID:             u.ID.String(),
		ImageURL:       u.ImageURL,
		StoragePath:    u.StoragePath,
		AnalysisStatus: u.AnalysisStatus,
		CreatedAt:      u.CreatedAt,
	}
}

func toItemResponse(item models.IdentifiedItem, imageURL string) models.ItemResponse {
	matches := item.ProductMatches
	if len(matches) == 0 || string(matches) == "null" {
		matches = json.RawMessage("[]")
	}

	resp := models.ItemResponse{
		ID:             item.ID.String(),
		UploadID:       item.UploadID.String(),
		ImageURL:       imageURL,
		ItemName:       item.ItemName.String,
		Category:       item.Category.String,
		Description:    item.Description.String,
		Color:          item.Color.String,
		Style:          item.Style.String,
		ProductMatches: matches,
		CreatedAt:      item.CreatedAt,
	}
	if item.AIConfidence.Valid {
		resp.Confidence = lo.ToPtr(item.AIConfidence.Float64)
	}
	return resp
}

func toDesignResponse(d models.CustomDesign) models.DesignResponse {
	resp := models.DesignResponse{
		ID:                  d.ID.String(),
		CustomizationPrompt: d.CustomizationPrompt,
		CustomImageURL:      d.CustomImageURL.String,
		FabricPreference:    d.FabricPreference.String,
		Measurements:        d.Measurements,
		Modifications:       d.Modifications,
		Status:              d.Status,
		CreatedAt:           d.CreatedAt,
	}
	if d.OriginalItemID.Valid {
		resp.OriginalItemID = d.OriginalItemID.UUID.String()
	}
	return resp
}

func toOrderResponse(o models.Order) models.OrderResponse {
	resp := models.OrderResponse{
		ID:               o.ID.String(),
		ShortCode:        checkout.ShortCode(o.ID.String()),
		OrderType:        o.OrderType,
		Status:           o.Status,
		TotalAmount:      o.TotalAmount,
		AmountDisplay:    checkout.FormatRupees(o.TotalAmount),
		FabricPreference: o.FabricPreference.String,
		Measurements:     o.Measurements,
		PlacedOn:         checkout.FormatPlacedOn(o.CreatedAt),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.ItemID.Valid {
		resp.ItemID = o.ItemID.UUID.String()
	}
	if o.CustomDesignID.Valid {
		resp.CustomDesignID = o.CustomDesignID.UUID.String()
	}

	var addr models.ShippingAddress
	if len(o.ShippingAddress) > 0 && json.Unmarshal(o.ShippingAddress, &addr) == nil {
		resp.ShippingAddress = &addr
	}
	return resp
}

func toUploadList(uploads []models.UploadedImage) []models.UploadResponse {
	return lo.Map(uploads, func(u models.UploadedImage, _ int) models.UploadResponse {
		return toUploadResponse(u)
	})
}

func toDesignList(designs []models.CustomDesign) []models.DesignResponse {
	return lo.Map(designs, func(d models.CustomDesign, _ int) models.DesignResponse {
		return toDesignResponse(d)
	})
}

func toOrderList(orders []models.Order) []models.OrderResponse {
	return lo.Map(orders, func(o models.Order, _ int) models.OrderResponse {
		return toOrderResponse(o)
	})
}
