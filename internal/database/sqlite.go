package database

import (
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stroytechnika/pumpdesk/internal/catalog"
	"github.com/stroytechnika/pumpdesk/internal/clients"
	"github.com/stroytechnika/pumpdesk/internal/leads"
	"github.com/stroytechnika/pumpdesk/internal/pages"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options tunes the database bootstrap.
type Options struct {
	// SeedCatalog inserts the starter catalog when the models table is empty.
	SeedCatalog bool
	// Clock stamps seeded records; defaults to time.Now.
	Clock func() time.Time
}

// OpenSQLite establishes a SQLite connection, migrates the schema, and
// optionally seeds the catalog. A single connection serializes all store
// mutations.
func OpenSQLite(path string, logger *zap.Logger, opts Options) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&catalog.Model{},
		&leads.Lead{},
		&clients.Client{},
		&pages.Page{},
		&migrationRecord{},
	); err != nil {
		return nil, err
	}

	if err := applyMigrations(db, logger); err != nil {
		return nil, err
	}

	if opts.SeedCatalog {
		if err := seedCatalog(db, opts.Clock, logger); err != nil {
			return nil, err
		}
	}

	if logger != nil {
		logger.Info("database initialized", zap.String("path", path))
	}

	return db, nil
}

func seedCatalog(db *gorm.DB, clock func() time.Time, logger *zap.Logger) error {
	if clock == nil {
		clock = time.Now
	}

	var count int64
	if err := db.Model(&catalog.Model{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeded := catalog.DefaultModels(clock().UTC().Unix())
	if err := db.Create(&seeded).Error; err != nil {
		return err
	}
	if logger != nil {
		logger.Info("catalog seeded", zap.Int("models", len(seeded)))
	}
	return nil
}
