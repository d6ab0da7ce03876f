package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"stylecraft-backend/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// user.
var ErrNotFound = errors.New("record not found")

// DatabaseClient reads and writes the application tables over a direct
// Postgres connection. Every query is scoped by user_id.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

func (d *DatabaseClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// jsonArg turns an optional JSON document into a query argument. Empty
// documents become NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

const uploadColumns = `id, user_id, image_url, storage_path, COALESCE(analysis_status, 'pending'), created_at`

func scanUpload(row rowScanner) (*models.UploadedImage, error) {
	var u models.UploadedImage
	if err := row.Scan(&u.ID, &u.UserID, &u.ImageURL, &u.StoragePath, &u.AnalysisStatus, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *DatabaseClient) CreateUpload(ctx context.Context, upload *models.UploadedImage) (*models.UploadedImage, error) {
	status := upload.AnalysisStatus
	if status == "" {
		status = models.UploadStatusPending
	}

	row := d.db.QueryRowContext(ctx, `
		INSERT INTO uploaded_images (id, user_id, image_url, storage_path, analysis_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+uploadColumns,
		upload.ID, upload.UserID, upload.ImageURL, upload.StoragePath, status)

	created, err := scanUpload(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetUpload(ctx context.Context, uploadID, userID uuid.UUID) (*models.UploadedImage, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+uploadColumns+`
		FROM uploaded_images
		WHERE id = $1 AND user_id = $2
	`, uploadID, userID)

	upload, err := scanUpload(row)
	if err != nil {
		return nil, notFound(err, "get upload")
	}
	return upload, nil
}

func (d *DatabaseClient) ListUploads(ctx context.Context, userID uuid.UUID) ([]models.UploadedImage, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+uploadColumns+`
		FROM uploaded_images
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	uploads := []models.UploadedImage{}
	for rows.Next() {
		upload, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		uploads = append(uploads, *upload)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	return uploads, nil
}

func (d *DatabaseClient) UpdateUploadStatus(ctx context.Context, uploadID, userID uuid.UUID, status string) error {
	result, err := d.db.ExecContext(ctx, `
		UPDATE uploaded_images
		SET analysis_status = $1
		WHERE id = $2 AND user_id = $3
	`, status, uploadID, userID)
	if err != nil {
		return fmt.Errorf("failed to update upload status: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const itemColumns = `id, user_id, upload_id, item_name, category, description, color, style, ai_confidence, product_matches, created_at`

func scanItem(row rowScanner) (*models.IdentifiedItem, error) {
	var item models.IdentifiedItem
	var matches []byte
	err := row.Scan(
		&item.ID, &item.UserID, &item.UploadID, &item.ItemName, &item.Category,
		&item.Description, &item.Color, &item.Style, &item.AIConfidence, &matches, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ProductMatches = matches
	return &item, nil
}

func (d *DatabaseClient) CreateIdentifiedItem(ctx context.Context, item *models.IdentifiedItem) (*models.IdentifiedItem, error) {
	matches := item.ProductMatches
	if len(matches) == 0 {
		matches = json.RawMessage("[]")
	}

	row := d.db.QueryRowContext(ctx, `
		INSERT INTO identified_items
			(id, user_id, upload_id, item_name, category, description, color, style, ai_confidence, product_matches)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb)
		RETURNING `+itemColumns,
		item.ID, item.UserID, item.UploadID, item.ItemName, item.Category,
		item.Description, item.Color, item.Style, item.AIConfidence, string(matches))

	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create identified item: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetIdentifiedItem(ctx context.Context, itemID, userID uuid.UUID) (*models.IdentifiedItem, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM identified_items
		WHERE id = $1 AND user_id = $2
	`, itemID, userID)

	item, err := scanItem(row)
	if err != nil {
		return nil, notFound(err, "get identified item")
	}
	return item, nil
}

const designColumns = `id, user_id, original_item_id, customization_prompt, custom_image_url, fabric_preference,
	measurements, modifications, COALESCE(status, 'generated'), created_at`

func scanDesign(row rowScanner) (*models.CustomDesign, error) {
	var design models.CustomDesign
	var measurements, modifications []byte
	err := row.Scan(
		&design.ID, &design.UserID, &design.OriginalItemID, &design.CustomizationPrompt,
		&design.CustomImageURL, &design.FabricPreference, &measurements, &modifications,
		&design.Status, &design.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	design.Measurements = measurements
	design.Modifications = modifications
	return &design, nil
}

func (d *DatabaseClient) CreateCustomDesign(ctx context.Context, design *models.CustomDesign) (*models.CustomDesign, error) {
	status := design.Status
	if status == "" {
		status = models.DesignStatusGenerated
	}

	row := d.db.QueryRowContext(ctx, `
		INSERT INTO custom_designs
			(id, user_id, original_item_id, customization_prompt, custom_image_url, fabric_preference,
			 measurements, modifications, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9)
		RETURNING `+designColumns,
		design.ID, design.UserID, design.OriginalItemID, design.CustomizationPrompt,
		design.CustomImageURL, design.FabricPreference,
		jsonArg(design.Measurements), jsonArg(design.Modifications), status)

	created, err := scanDesign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create custom design: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetCustomDesign(ctx context.Context, designID, userID uuid.UUID) (*models.CustomDesign, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+designColumns+`
		FROM custom_designs
		WHERE id = $1 AND user_id = $2
	`, designID, userID)

	design, err := scanDesign(row)
	if err != nil {
		return nil, notFound(err, "get custom design")
	}
	return design, nil
}

func (d *DatabaseClient) ListCustomDesigns(ctx context.Context, userID uuid.UUID) ([]models.CustomDesign, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+designColumns+`
		FROM custom_designs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom designs: %w", err)
	}
	defer rows.Close()

	designs := []models.CustomDesign{}
	for rows.Next() {
		design, err := scanDesign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan custom design: %w", err)
		}
		designs = append(designs, *design)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list custom designs: %w", err)
	}

	return designs, nil
}

const orderColumns = `id, user_id, order_type, item_id, custom_design_id, shipping_address,
	COALESCE(total_amount, 0)::float8, fabric_preference, measurements, COALESCE(status, 'pending'),
	created_at, updated_at`

func scanOrder(row rowScanner) (*models.Order, error) {
	var order models.Order
	var shipping, measurements []byte
	err := row.Scan(
		&order.ID, &order.UserID, &order.OrderType, &order.ItemID, &order.CustomDesignID,
		&shipping, &order.TotalAmount, &order.FabricPreference, &measurements, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.ShippingAddress = shipping
	order.Measurements = measurements
	return &order, nil
}

func (d *DatabaseClient) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	status := order.Status
	if status == "" {
		status = models.OrderStatusPending
	}

	row := d.db.QueryRowContext(ctx, `
		INSERT INTO orders
			(id, user_id, order_type, item_id, custom_design_id, shipping_address, total_amount,
			 fabric_preference, measurements, status)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9::jsonb, $10)
		RETURNING `+orderColumns,
		order.ID, order.UserID, order.OrderType, order.ItemID, order.CustomDesignID,
		jsonArg(order.ShippingAddress), order.TotalAmount, order.FabricPreference,
		jsonArg(order.Measurements), status)

	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) GetOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID)

	order, err := scanOrder(row)
	if err != nil {
		return nil, notFound(err, "get order")
	}
	return order, nil
}

func (d *DatabaseClient) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// ConfirmOrder sets the order status to confirmed. Confirming an already
// confirmed order succeeds and leaves it confirmed.
func (d *DatabaseClient) ConfirmOrder(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+orderColumns,
		models.OrderStatusConfirmed, orderID, userID)

	order, err := scanOrder(row)
	if err != nil {
		return nil, notFound(err, "confirm order")
	}
	return order, nil
}
