// internal/infrastructure/database/postgres/document_store.go
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/your-org/pantry-backend/internal/domain/pantry"
)

// PantryDocument stores one whole pantry snapshot as JSONB
type PantryDocument struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(255)"`
	Data      []byte    `json:"data" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PantryDocument) TableName() string {
	return "pantry_documents"
}

// DocumentStore persists the pantry in a single row keyed by document id
type DocumentStore struct {
	db         *gorm.DB
	documentID string
}

func NewDocumentStore(db *gorm.DB, documentID string) *DocumentStore {
	return &DocumentStore{
		db:         db,
		documentID: documentID,
	}
}

// Load returns nil when the row does not exist yet
func (s *DocumentStore) Load(ctx context.Context) (*pantry.Snapshot, error) {
	var doc PantryDocument
	err := s.db.WithContext(ctx).Where("id = ?", s.documentID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry document: %w", err)
	}

	var snap pantry.Snapshot
	if err := json.Unmarshal(doc.Data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode pantry document: %w", err)
	}
	return &snap, nil
}

// Save upserts the row
func (s *DocumentStore) Save(ctx context.Context, snap *pantry.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode pantry document: %w", err)
	}

	doc := PantryDocument{
		ID:        s.documentID,
		Data:      data,
		UpdatedAt: snap.UpdatedAt,
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to save pantry document: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (s *DocumentStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
