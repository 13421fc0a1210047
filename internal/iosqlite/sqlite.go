// Package iosqlite implements the sqlite result store with the pure Go
// modernc driver.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/gnames/gnsys"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGo)
)

// SQLiteStore implements store.Store with a sqlite file.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

var _ store.Store = (*SQLiteStore)(nil)

// New opens or creates a sqlite store at path. The parent directory is
// created when missing.
func New(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := gnsys.MakeDir(dir); err != nil {
			return nil, OpenError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, OpenError(path, err)
	}
	// sqlite does not handle multiple writers well
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, OpenError(path, err)
	}

	return &SQLiteStore{path: path, db: db}, nil
}

// DB returns the underlying database handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Init creates result tables and indices that do not exist yet.
func (s *SQLiteStore) Init(ctx context.Context) error {
	for _, m := range schema.AllModels() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, q := range stmts {
			if _, err := s.db.ExecContext(ctx, q); err != nil {
				return InitError(m.TableName(), err)
			}
		}
	}
	return nil
}

// SaveRun records a run.
func (s *SQLiteStore) SaveRun(ctx context.Context, run schema.Run) error {
	return saveModels(ctx, s, []schema.Run{run})
}

// SaveGenes saves specific genes of a run.
func (s *SQLiteStore) SaveGenes(
	ctx context.Context,
	runID string,
	genes []presence.SpecificGene,
) error {
	return saveModels(ctx, s, schema.GeneRows(runID, genes))
}

// SaveRegions saves conserved regions of a run.
func (s *SQLiteStore) SaveRegions(
	ctx context.Context,
	runID string,
	regions []conserved.Region,
) error {
	return saveModels(ctx, s, schema.RegionRows(runID, regions))
}

// SavePrimers saves ranked primer pairs of a run.
func (s *SQLiteStore) SavePrimers(
	ctx context.Context,
	runID string,
	primers []quality.Ranked,
) error {
	return saveModels(ctx, s, schema.PrimerRows(runID, primers))
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// saveModels inserts rows in one transaction. Rows with existing ids are
// replaced.
func saveModels[T schema.Model](
	ctx context.Context,
	s *SQLiteStore,
	rows []T,
) error {
	if len(rows) == 0 {
		return nil
	}
	table := rows[0].TableName()
	cols := schema.Columns(rows[0])
	q := fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(cols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(table, len(rows), err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return SaveError(table, len(rows), err)
	}
	defer stmt.Close()

	for i := range rows {
		if _, err = stmt.ExecContext(ctx, schema.Values(rows[i])...); err != nil {
			return SaveError(table, len(rows), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return SaveError(table, len(rows), err)
	}
	slog.Debug("Saved rows", "table", table, "rows", len(rows), "db", s.path)
	return nil
}
