// Package store defines persistence of analysis results. Output files are
// always written, a Store keeps the same results queryable across runs.
package store

import (
	"context"
	"time"

	gnprimer "github.com/gnames/gnprimer/pkg"
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/google/uuid"
)

// Store saves results of analysis runs.
type Store interface {
	// Init creates tables that do not exist yet.
	Init(ctx context.Context) error

	// SaveRun records a run. Other Save methods refer to it by id.
	SaveRun(ctx context.Context, run schema.Run) error

	// SaveGenes saves specific genes of a run in their order.
	SaveGenes(
		ctx context.Context,
		runID string,
		genes []presence.SpecificGene,
	) error

	// SaveRegions saves conserved regions, including genes without one.
	SaveRegions(
		ctx context.Context,
		runID string,
		regions []conserved.Region,
	) error

	// SavePrimers saves ranked primer pairs.
	SavePrimers(
		ctx context.Context,
		runID string,
		primers []quality.Ranked,
	) error

	// Close releases connections of the store.
	Close() error
}

// NewRun creates a run record with a random id.
func NewRun(command, input string) schema.Run {
	return schema.Run{
		ID:        uuid.New().String(),
		Command:   command,
		Input:     input,
		Version:   gnprimer.Version,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Noop is a Store that discards everything.
type Noop struct{}

func (Noop) Init(context.Context) error                { return nil }
func (Noop) SaveRun(context.Context, schema.Run) error { return nil }
func (Noop) SaveGenes(context.Context, string, []presence.SpecificGene) error {
	return nil
}
func (Noop) SaveRegions(context.Context, string, []conserved.Region) error {
	return nil
}
func (Noop) SavePrimers(context.Context, string, []quality.Ranked) error {
	return nil
}
func (Noop) Close() error { return nil }
