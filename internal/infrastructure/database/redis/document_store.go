// internal/infrastructure/database/redis/document_store.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

const documentKeyPrefix = "pantry:document:"

// DocumentStore keeps the pantry snapshot as a JSON string under one key
type DocumentStore struct {
	client *redis.Client
	key    string
}

func NewDocumentStore(client *redis.Client, documentID string) *DocumentStore {
	return &DocumentStore{
		client: client,
		key:    DocumentKey(documentID),
	}
}

// DocumentKey returns the key holding a document
func DocumentKey(documentID string) string {
	return documentKeyPrefix + documentID
}

// Load returns nil when the key does not exist yet
func (s *DocumentStore) Load(ctx context.Context) (*pantry.Snapshot, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry document: %w", err)
	}

	var snap pantry.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode pantry document: %w", err)
	}
	return &snap, nil
}

// Save overwrites the key without expiration
func (s *DocumentStore) Save(ctx context.Context, snap *pantry.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode pantry document: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save pantry document: %w", err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
