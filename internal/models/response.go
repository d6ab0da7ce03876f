package models

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type UploadResponse struct {
	ID             string    `json:"id"`
	ImageURL       string    `json:"image_url"`
	StoragePath    string    `json:"storage_path"`
	AnalysisStatus string    `json:"analysis_status"`
	MimeType       string    `json:"mime_type,omitempty"`
	Size           int64     `json:"size,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type UploadListResponse struct {
	Uploads []UploadResponse `json:"uploads"`
}

type ItemResponse struct {
	ID             string          `json:"id"`
	UploadID       string          `json:"upload_id"`
	ImageURL       string          `json:"image_url,omitempty"`
	ItemName       string          `json:"item_name"`
	Category       string          `json:"category,omitempty"`
	Description    string          `json:"description,omitempty"`
	Color          string          `json:"color,omitempty"`
	Style          string          `json:"style,omitempty"`
	Confidence     *float64        `json:"confidence,omitempty"`
	ProductMatches json.RawMessage `json:"product_matches" swaggertype:"array,object"`
	CreatedAt      time.Time       `json:"created_at"`
}

type DesignResponse struct {
	ID                  string          `json:"id"`
	OriginalItemID      string          `json:"original_item_id,omitempty"`
	CustomizationPrompt string          `json:"customization_prompt"`
	CustomImageURL      string          `json:"custom_image_url,omitempty"`
	FabricPreference    string          `json:"fabric_preference,omitempty"`
	Measurements        json.RawMessage `json:"measurements,omitempty" swaggertype:"object"`
	Modifications       json.RawMessage `json:"modifications,omitempty" swaggertype:"object"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
}

type DesignListResponse struct {
	Designs []DesignResponse `json:"designs"`
}

type OTPResponse struct {
	Phone    string `json:"phone"`
	Status   string `json:"status"`
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

type OrderResponse struct {
	ID               string           `json:"id"`
	ShortCode        string           `json:"short_code"`
	OrderType        string           `json:"order_type"`
	Status           string           `json:"status"`
	ItemID           string           `json:"item_id,omitempty"`
	CustomDesignID   string           `json:"custom_design_id,omitempty"`
	TotalAmount      float64          `json:"total_amount"`
	AmountDisplay    string           `json:"amount_display"`
	ShippingAddress  *ShippingAddress `json:"shipping_address,omitempty"`
	FabricPreference string           `json:"fabric_preference,omitempty"`
	Measurements     json.RawMessage  `json:"measurements,omitempty" swaggertype:"object"`
	PlacedOn         string           `json:"placed_on"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// PaymentResponse is the confirmation view shown after a payment.
type PaymentResponse struct {
	Order              OrderResponse `json:"order"`
	PaymentMethod      string        `json:"payment_method"`
	PaymentMethodLabel string        `json:"payment_method_label"`
	Message            string        `json:"message"`
}
