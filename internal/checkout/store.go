package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoVerification = errors.New("no verification state")

// Verification is the phone verification state of one user.
type Verification struct {
	Phone      string     `json:"phone"`
	Code       string     `json:"code"`
	Verified   bool       `json:"verified"`
	SentAt     time.Time  `json:"sent_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

type VerificationStore interface {
	Get(ctx context.Context, userID string) (*Verification, error)
	Save(ctx context.Context, userID string, v *Verification, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}

// MemoryStore keeps verification state in process. It is used when no
// Redis is configured and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	v         Verification
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*Verification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		return nil, ErrNoVerification
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, userID)
		return nil, ErrNoVerification
	}
	v := e.v
	return &v, nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, v *Verification, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{v: *v}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[userID] = e
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}

// RedisStore keeps verification state in Redis so that it survives restarts
// and is shared between replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "otp:"}
}

func (s *RedisStore) key(userID string) string {
	return s.prefix + userID
}

func (s *RedisStore) Get(ctx context.Context, userID string) (*Verification, error) {
	val, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoVerification
	} else if err != nil {
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	var v Verification
	if err := json.Unmarshal(val, &v); err != nil {
		return nil, fmt.Errorf("failed to decode verification: %w", err)
	}
	return &v, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, v *Verification, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode verification: %w", err)
	}
	if err := s.client.Set(ctx, s.key(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save verification: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete verification: %w", err)
	}
	return nil
}
