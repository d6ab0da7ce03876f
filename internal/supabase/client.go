package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/supabase-community/supabase-go"
	"stylecraft-backend/internal/models"
)

// ProfileClient reads and writes the profiles table through PostgREST.
type ProfileClient struct {
	client *supabase.Client
}

func NewProfileClient(supabaseURL, serviceKey string) (*ProfileClient, error) {
	client, err := supabase.NewClient(supabaseURL, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return &ProfileClient{client: client}, nil
}

func (p *ProfileClient) GetProfile(userID string) (*models.Profile, error) {
	data, _, err := p.client.From("profiles").
		Select("*", "exact", false).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return firstProfile(data)
}

// UpsertProfile sets the full name of the user's profile, creating the row
// when the user has none yet.
func (p *ProfileClient) UpsertProfile(userID, fullName string) (*models.Profile, error) {
	_, err := p.GetProfile(userID)
	switch {
	case err == nil:
		data, _, err := p.client.From("profiles").
			Update(map[string]interface{}{
				"full_name":  fullName,
				"updated_at": time.Now().UTC().Format(time.RFC3339),
			}, "representation", "").
			Eq("user_id", userID).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		return firstProfile(data)

	case errors.Is(err, ErrNotFound):
		data, _, err := p.client.From("profiles").
			Insert(map[string]interface{}{
				"user_id":   userID,
				"full_name": fullName,
			}, false, "", "representation", "").
			Execute()
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return firstProfile(data)

	default:
		return nil, err
	}
}

func firstProfile(data []byte) (*models.Profile, error) {
	var profiles []models.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}
