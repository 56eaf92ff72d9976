// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger *logrus.Logger) *Migration {
	return &Migration{
		db:     db,
		logger: logger,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("Running database auto-migrations")

	models := []interface{}{
		&PantryDocument{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_pantry_documents_updated_at ON pantry_documents(updated_at DESC)",
		// Lookups by category name inside the document
		"CREATE INDEX IF NOT EXISTS idx_pantry_documents_data ON pantry_documents USING GIN (data jsonb_path_ops)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			m.logger.WithError(err).Warnf("Failed to create index: %s", indexSQL)
			continue
		}
	}

	m.logger.Info("Database indexes created")
	return nil
}

// DropAllTables drops every table owned by the service
func (m *Migration) DropAllTables() error {
	m.logger.Warn("Dropping all tables")

	if err := m.db.Migrator().DropTable(&PantryDocument{}); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	return nil
}
