package iosqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gnprimer/internal/iosqlite"
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *iosqlite.SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sub", "gnprimer.sqlite")
	s, err := iosqlite.New(path)
	require.Nil(t, err)
	t.Cleanup(func() { s.Close() })
	require.Nil(t, s.Init(context.Background()))
	return s
}

func count(t *testing.T, s *iosqlite.SQLiteStore, q string, args ...any) int {
	t.Helper()
	var n int
	err := s.DB().QueryRow(q, args...).Scan(&n)
	require.Nil(t, err)
	return n
}

func TestInitIdempotent(t *testing.T) {
	s := newStore(t)
	assert.Nil(t, s.Init(context.Background()))
	n := count(t, s,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN "+
			"('runs', 'specific_genes', 'conserved_regions', 'ranked_primers')")
	assert.Equal(t, 4, n)
}

func TestSaveResults(t *testing.T) {
	assert := assert.New(t)
	s := newStore(t)
	ctx := context.Background()

	run := store.NewRun("genes", "gene_presence_absence.csv")
	run.Genus = "Escherichia"
	run.TargetPrefix = "Esc_"
	require.Nil(t, s.SaveRun(ctx, run))

	genes := []presence.SpecificGene{
		{Gene: "g1", Annotation: "hypothetical protein"},
		{Gene: "g2", Annotation: "kinase"},
	}
	require.Nil(t, s.SaveGenes(ctx, run.ID, genes))
	// saving again replaces rows
	require.Nil(t, s.SaveGenes(ctx, run.ID, genes))
	assert.Equal(2, count(t, s,
		"SELECT count(*) FROM specific_genes WHERE run_id = ?", run.ID))

	regions := []conserved.Region{
		{Gene: "g1", Start: 5, End: 104, Length: 100, Consensus: "ACGT"},
		{Gene: "g2"},
	}
	require.Nil(t, s.SaveRegions(ctx, run.ID, regions))
	assert.Equal(1, count(t, s,
		"SELECT count(*) FROM conserved_regions WHERE length = 0"))

	ranked := quality.NewDefault().ScoreAll([]primer3.PrimerPair{
		{SequenceID: "g1", PairIndex: 0, ProductSize: 300},
		{SequenceID: "g1", PairIndex: 1, ProductSize: 100},
	}, 2)
	require.Nil(t, s.SavePrimers(ctx, run.ID, ranked))
	assert.Equal(1, count(t, s,
		"SELECT pair_index FROM ranked_primers WHERE global_rank = 1"))

	var prefix string
	err := s.DB().QueryRow(
		"SELECT target_prefix FROM runs WHERE id = ?", run.ID,
	).Scan(&prefix)
	require.Nil(t, err)
	assert.Equal("Esc_", prefix)

	assert.Nil(s.SaveGenes(ctx, run.ID, nil))
}

func TestSaveWithoutInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.sqlite")
	s, err := iosqlite.New(path)
	require.Nil(t, err)
	defer s.Close()

	err = s.SaveRun(context.Background(), store.NewRun("rank", ""))
	assert.NotNil(t, err)
}
