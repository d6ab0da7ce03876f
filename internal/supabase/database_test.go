package supabase_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylecraft-backend/internal/models"
	"stylecraft-backend/internal/supabase"
)

var orderCols = []string{
	"id", "user_id", "order_type", "item_id", "custom_design_id", "shipping_address",
	"total_amount", "fabric_preference", "measurements", "status", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*supabase.DatabaseClient, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return supabase.NewDatabaseClientFromDB(db), mock
}

func TestCreateOrder(t *testing.T) {
	client, mock := newMockDB(t)

	orderID, userID, designID := uuid.New(), uuid.New(), uuid.New()
	shipping := json.RawMessage(`{"address":"12 MG Road","city":"Bengaluru"}`)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs(orderID.String(), userID.String(), models.OrderTypeCustom, nil, designID.String(),
			string(shipping), 4999.0, nil, nil, models.OrderStatusPending).
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(
			orderID.String(), userID.String(), models.OrderTypeCustom, nil, designID.String(),
			[]byte(shipping), 4999.0, nil, nil, models.OrderStatusPending, now, now,
		))

	order, err := client.CreateOrder(context.Background(), &models.Order{
		ID:              orderID,
		UserID:          userID,
		OrderType:       models.OrderTypeCustom,
		CustomDesignID:  uuid.NullUUID{UUID: designID, Valid: true},
		ShippingAddress: shipping,
		TotalAmount:     4999,
	})
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	assert.False(t, order.ItemID.Valid)
	assert.Equal(t, designID, order.CustomDesignID.UUID)
	assert.JSONEq(t, string(shipping), string(order.ShippingAddress))
	assert.Nil(t, order.Measurements)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	client, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
		WillReturnError(sql.ErrNoRows)

	_, err := client.GetOrder(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, supabase.ErrNotFound)
}

func TestConfirmOrder(t *testing.T) {
	client, mock := newMockDB(t)

	orderID, userID := uuid.New(), uuid.New()
	now := time.Now()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders")).
			WithArgs(models.OrderStatusConfirmed, orderID.String(), userID.String()).
			WillReturnRows(sqlmock.NewRows(orderCols).AddRow(
				orderID.String(), userID.String(), models.OrderTypeStandard, nil, nil,
				[]byte(`{}`), 1299.0, nil, nil, models.OrderStatusConfirmed, now, now,
			))
	}

	for i := 0; i < 2; i++ {
		order, err := client.ConfirmOrder(context.Background(), orderID, userID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	}
}

func TestListOrders_Empty(t *testing.T) {
	client, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(orderCols))

	orders, err := client.ListOrders(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestUpdateUploadStatus(t *testing.T) {
	client, mock := newMockDB(t)
	uploadID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE uploaded_images")).
		WithArgs(models.UploadStatusAnalyzed, uploadID.String(), userID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE uploaded_images")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, client.UpdateUploadStatus(context.Background(), uploadID, userID, models.UploadStatusAnalyzed))
	assert.ErrorIs(t, client.UpdateUploadStatus(context.Background(), uploadID, userID, models.UploadStatusAnalyzed), supabase.ErrNotFound)
}

func TestCreateIdentifiedItem_DefaultsMatches(t *testing.T) {
	client, mock := newMockDB(t)
	itemID, userID, uploadID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO identified_items")).
		WithArgs(itemID.String(), userID.String(), uploadID.String(), "Blue Dress", nil, nil, nil, nil, nil, "[]").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "upload_id", "item_name", "category", "description", "color", "style",
			"ai_confidence", "product_matches", "created_at",
		}).AddRow(itemID.String(), userID.String(), uploadID.String(), "Blue Dress", nil, nil, nil, nil,
			nil, []byte("[]"), time.Now()))

	item, err := client.CreateIdentifiedItem(context.Background(), &models.IdentifiedItem{
		ID:       itemID,
		UserID:   userID,
		UploadID: uploadID,
		ItemName: sql.NullString{String: "Blue Dress", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Blue Dress", item.ItemName.String)
	assert.False(t, item.AIConfidence.Valid)
	assert.Equal(t, "[]", string(item.ProductMatches))
}
