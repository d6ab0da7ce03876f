package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	OrderTypeStandard = "standard"
	OrderTypeCustom   = "custom"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	OrderType        string
	ItemID           uuid.NullUUID
	CustomDesignID   uuid.NullUUID
	ShippingAddress  json.RawMessage
	TotalAmount      float64
	FabricPreference sql.NullString
	Measurements     json.RawMessage
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ShippingAddress is the blob stored in orders.shipping_address.
type ShippingAddress struct {
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Phone        string `json:"phone"`
	DeliverySlot string `json:"deliverySlot,omitempty"`
	DeliveryDate string `json:"deliveryDate"`
}
