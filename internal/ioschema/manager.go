// Package ioschema manages the PostgreSQL schema of result tables.
// This is an impure I/O package that wraps GORM AutoMigrate
// functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager creates and updates result tables.
type Manager struct {
	pool *pgxpool.Pool
}

// NewManager creates a Manager for a connected pool.
func NewManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

// Migrate creates missing tables and columns using GORM AutoMigrate.
// It is idempotent, running it on an up-to-date schema changes nothing.
func (m *Manager) Migrate(ctx context.Context) error {
	gormDB, err := m.gorm()
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return MigrateSchemaError(err)
	}
	slog.Info("Result tables are ready", "tables", len(schema.AllModels()))
	return nil
}

func (m *Manager) gorm() (*gorm.DB, error) {
	if m.pool == nil {
		return nil, NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(m.pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return gormDB, nil
}
