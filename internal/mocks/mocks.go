// Package mocks holds testify mocks for the dependencies of the HTTP
// handlers.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"stylecraft-backend/internal/checkout"
	"stylecraft-backend/internal/gateway"
	"stylecraft-backend/internal/models"
)

// Store mocks the database client.
type Store struct {
	mock.Mock
}

func (m *Store) CreateUpload(ctx context.Context, upload *models.UploadedImage) (*models.UploadedImage, error) {
	args := m.Called(ctx, upload)
	return upload, args.Error(0)
}

func (m *Store) GetUpload(ctx context.Context, uploadID, userID uuid.UUID) (*models.UploadedImage, error) {
	args := m.Called(ctx, uploadID, userID)
	u, _ := args.Get(0).(*models.UploadedImage)
	return u, args.Error(1)
}

func (m *Store) ListUploads(ctx context.Context, userID uuid.UUID) ([]models.UploadedImage, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).([]models.UploadedImage)
	return u, args.Error(1)
}

func (m *Store) UpdateUploadStatus(ctx context.Context, uploadID, userID uuid.UUID, status string) error {
	return m.Called(ctx, uploadID, userID, status).Error(0)
}

func (m *Store) CreateIdentifiedItem(ctx context.Context, item *models.IdentifiedItem) (*models.IdentifiedItem, error) {
	args := m.Called(ctx, item)
	return item, args.Error(0)
}

func (m *Store) GetIdentifiedItem(ctx context.Context, itemID, userID uuid.UUID) (*models.IdentifiedItem, error) {
	args := m.Called(ctx, itemID, userID)
	i, _ := args.Get(0).(*models.IdentifiedItem)
	return i, args.Error(1)
}

func (m *Store) CreateCustomDesign(ctx context.Context, design *models.CustomDesign) (*models.CustomDesign, error) {
	args := m.Called(ctx, design)
	return design, args.Error(0)
}

func (m *Store) GetCustomDesign(ctx context.Context, designID, userID uuid.UUID) (*models.CustomDesign, error) {
	args := m.Called(ctx, designID, userID)
	d, _ := args.Get(0).(*models.CustomDesign)
	return d, args.Error(1)
}

func (m *Store) ListCustomDesigns(ctx context.Context, userID uuid.UUID) ([]models.CustomDesign, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).([]models.CustomDesign)
	return d, args.Error(1)
}

func (m *Store) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	args := m.Called(ctx, order)
	return order, args.Error(0)
}

func (m *Store) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *Store) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	o, _ := args.Get(0).([]models.Order)
	return o, args.Error(1)
}

func (m *Store) ConfirmOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(storagePath, contentType string, data []byte) (string, error) {
	args := m.Called(storagePath, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *Storage) Delete(storagePath string) error {
	return m.Called(storagePath).Error(0)
}

type FashionAI struct {
	mock.Mock
}

func (m *FashionAI) Analyze(ctx context.Context, imageURL string) (json.RawMessage, error) {
	args := m.Called(ctx, imageURL)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *FashionAI) GenerateDesign(ctx context.Context, prompt, originalImageURL string) (*gateway.DesignResult, error) {
	args := m.Called(ctx, prompt, originalImageURL)
	r, _ := args.Get(0).(*gateway.DesignResult)
	return r, args.Error(1)
}

type Profiles struct {
	mock.Mock
}

func (m *Profiles) GetProfile(userID string) (*models.Profile, error) {
	args := m.Called(userID)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

func (m *Profiles) UpsertProfile(userID, fullName string) (*models.Profile, error) {
	args := m.Called(userID, fullName)
	p, _ := args.Get(0).(*models.Profile)
	return p, args.Error(1)
}

// Payments mocks the payment processor.
type Payments struct {
	mock.Mock
}

func (m *Payments) Process(ctx context.Context, method string) (*checkout.Receipt, error) {
	args := m.Called(ctx, method)
	r, _ := args.Get(0).(*checkout.Receipt)
	return r, args.Error(1)
}
