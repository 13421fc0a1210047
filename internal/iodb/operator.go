// Package iodb implements the PostgreSQL result store using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gnprimer/internal/ioschema"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore implements store.Store with PostgreSQL.
type PgStore struct {
	pool      *pgxpool.Pool
	batchSize int
}

var _ store.Store = (*PgStore)(nil)

// NewPgStore creates a new PostgreSQL store (without connecting).
func NewPgStore() *PgStore {
	return &PgStore{}
}

// Connect establishes a connection pool to PostgreSQL.
// Uses sensible hardcoded pool settings that work well for
// most use cases.
func (p *PgStore) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return NewConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 0
	poolConfig.MaxConnIdleTime = 0

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return NewConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return NewConnectionError(cfg.Host, cfg.Port,
			cfg.Database, cfg.User, err)
	}

	p.pool = pool
	p.batchSize = max(cfg.BatchSize, 1)
	return nil
}

// Close releases all database connections.
func (p *PgStore) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool.
func (p *PgStore) Pool() *pgxpool.Pool {
	return p.pool
}

// Init creates or updates result tables with GORM AutoMigrate.
func (p *PgStore) Init(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}
	return ioschema.NewManager(p.pool).Migrate(ctx)
}

// TableExists checks if a table exists in the current
// database.
func (p *PgStore) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	var exists bool
	err := p.pool.QueryRow(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// SaveRun records a run.
func (p *PgStore) SaveRun(ctx context.Context, run schema.Run) error {
	return p.copyRows(ctx, run.TableName(), schema.Columns(run),
		[][]any{schema.Values(run)})
}

// SaveGenes saves specific genes of a run.
func (p *PgStore) SaveGenes(
	ctx context.Context,
	runID string,
	genes []presence.SpecificGene,
) error {
	rows := schema.GeneRows(runID, genes)
	return saveModels(ctx, p, rows)
}

// SaveRegions saves conserved regions of a run.
func (p *PgStore) SaveRegions(
	ctx context.Context,
	runID string,
	regions []conserved.Region,
) error {
	rows := schema.RegionRows(runID, regions)
	return saveModels(ctx, p, rows)
}

// SavePrimers saves ranked primer pairs of a run.
func (p *PgStore) SavePrimers(
	ctx context.Context,
	runID string,
	primers []quality.Ranked,
) error {
	rows := schema.PrimerRows(runID, primers)
	return saveModels(ctx, p, rows)
}

func saveModels[T schema.Model](ctx context.Context, p *PgStore, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	values := make([][]any, len(rows))
	for i := range rows {
		values[i] = schema.Values(rows[i])
	}
	return p.copyRows(ctx, rows[0].TableName(), schema.Columns(rows[0]), values)
}

// copyRows sends rows with PostgreSQL COPY in batches.
func (p *PgStore) copyRows(
	ctx context.Context,
	table string,
	columns []string,
	rows [][]any,
) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	var total int64
	for start := 0; start < len(rows); start += p.batchSize {
		end := min(start+p.batchSize, len(rows))
		n, err := p.pool.CopyFrom(
			ctx,
			pgx.Identifier{table},
			columns,
			pgx.CopyFromRows(rows[start:end]),
		)
		if err != nil {
			return SaveError(table, end-start, err)
		}
		total += n
	}

	slog.Debug("Saved rows", "table", table, "rows", total)
	return nil
}
