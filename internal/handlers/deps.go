package handlers

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/models"
)

// FashionAI is the AI gateway as the handlers use it.
type FashionAI interface {
	Analyze(ctx context.Context, imageURL string) (json.RawMessage, error)
	GenerateDesign(ctx context.Context, prompt, originalImageURL string) (*gateway.DesignResult, error)
}

// ObjectStorage stores image bytes and returns their public URL.
type ObjectStorage interface {
	Upload(storagePath, contentType string, data []byte) (string, error)
	Delete(storagePath string) error
}

type UploadStore interface {
	CreateUpload(ctx context.Context, upload *models.UploadedImage) (*models.UploadedImage, error)
	GetUpload(ctx context.Context, uploadID, userID uuid.UUID) (*models.UploadedImage, error)
	ListUploads(ctx context.Context, userID uuid.UUID) ([]models.UploadedImage, error)
	UpdateUploadStatus(ctx context.Context, uploadID, userID uuid.UUID, status string) error
}

type ItemStore interface {
	UploadStore
	CreateIdentifiedItem(ctx context.Context, item *models.IdentifiedItem) (*models.IdentifiedItem, error)
	GetIdentifiedItem(ctx context.Context, itemID, userID uuid.UUID) (*models.IdentifiedItem, error)
}

type DesignStore interface {
	ItemStore
	CreateCustomDesign(ctx context.Context, design *models.CustomDesign) (*models.CustomDesign, error)
	GetCustomDesign(ctx context.Context, designID, userID uuid.UUID) (*models.CustomDesign, error)
	ListCustomDesigns(ctx context.Context, userID uuid.UUID) ([]models.CustomDesign, error)
}

type OrderStore interface {
	GetIdentifiedItem(ctx context.Context, itemID, userID uuid.UUID) (*models.IdentifiedItem, error)
	GetCustomDesign(ctx context.Context, designID, userID uuid.UUID) (*models.CustomDesign, error)
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ConfirmOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error)
}

type ProfileStore interface {
	GetProfile(userID string) (*models.Profile, error)
	UpsertProfile(userID, fullName string) (*models.Profile, error)
}

type PhoneVerifier interface {
	SendCode(ctx context.Context, userID, phone string) error
	VerifyCode(ctx context.Context, userID, phone, code string) error
	IsVerified(ctx context.Context, userID, phone string) (bool, error)
	Consume(ctx context.Context, userID string) error
}

type PaymentProcessor interface {
	Process(ctx context.Context, method string) (*checkout.Receipt, error)
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
