package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	UploadStatusPending  = "pending"
	UploadStatusAnalyzed = "analyzed"

	DesignStatusGenerated = "generated"
)

type UploadedImage struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ImageURL       string
	StoragePath    string
	AnalysisStatus string
	CreatedAt      time.Time
}

type IdentifiedItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	UploadID       uuid.UUID
	ItemName       sql.NullString
	Category       sql.NullString
	Description    sql.NullString
	Color          sql.NullString
	Style          sql.NullString
	AIConfidence   sql.NullFloat64
	ProductMatches json.RawMessage
	CreatedAt      time.Time
}

type CustomDesign struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	OriginalItemID      uuid.NullUUID
	CustomizationPrompt string
	CustomImageURL      sql.NullString
	FabricPreference    sql.NullString
	Measurements        json.RawMessage
	Modifications       json.RawMessage
	Status              string
	CreatedAt           time.Time
}

// Measurements are free-form garment measurements, e.g. "38 in".
type Measurements struct {
	Chest  string `json:"chest,omitempty"`
	Waist  string `json:"waist,omitempty"`
	Hips   string `json:"hips,omitempty"`
	Length string `json:"length,omitempty"`
}

// Profile mirrors a row of the profiles table as served by PostgREST.
type Profile struct {
	ID        string  `json:"id,omitempty"`
	UserID    string  `json:"user_id"`
	Email     *string `json:"email,omitempty"`
	FullName  *string `json:"full_name,omitempty"`
	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}
