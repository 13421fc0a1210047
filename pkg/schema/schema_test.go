package schema_test

import (
	"testing"

	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDDL(t *testing.T) {
	tests := []struct {
		msg      string
		model    schema.Model
		table    string
		contains []string
	}{
		{"runs", schema.Run{}, "runs",
			[]string{"id TEXT PRIMARY KEY", "command TEXT NOT NULL"}},
		{"genes", schema.SpecificGene{}, "specific_genes",
			[]string{"run_id TEXT NOT NULL", "ord INTEGER NOT NULL"}},
		{"regions", schema.ConservedRegion{}, "conserved_regions",
			[]string{"start_pos INTEGER NOT NULL", "length_class TEXT"}},
		{"primers", schema.RankedPrimer{}, "ranked_primers",
			[]string{"quality_score REAL NOT NULL", "global_rank INTEGER NOT NULL"}},
	}

	for _, v := range tests {
		ddl := v.model.TableDDL()
		assert.Equal(t, v.table, v.model.TableName(), v.msg)
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+v.table, v.msg)
		for _, c := range v.contains {
			assert.Contains(t, ddl, c, v.msg)
		}
	}
}

func TestIndexDDL(t *testing.T) {
	assert.Empty(t, schema.Run{}.IndexDDL())
	for _, m := range schema.AllModels()[1:] {
		idx := m.IndexDDL()
		require.NotEmpty(t, idx, m.TableName())
		assert.Contains(t, idx[0], "ON "+m.TableName()+"(run_id)")
	}
}

func TestColumnsValues(t *testing.T) {
	assert := assert.New(t)
	g := schema.SpecificGene{
		ID: "id1", RunID: "run1", Ord: 2, Gene: "g", Annotation: "a",
	}
	assert.Equal(
		[]string{"id", "run_id", "ord", "gene", "annotation"},
		schema.Columns(g),
	)
	assert.Equal([]any{"id1", "run1", 2, "g", "a"}, schema.Values(&g))
	assert.Equal(len(schema.Columns(schema.RankedPrimer{})),
		len(schema.Values(schema.RankedPrimer{})))
}

func TestRows(t *testing.T) {
	assert := assert.New(t)
	run := "8a2c0c56-0d5e-4b5c-9d7e-0e3a4b6c7d8e"

	genes := schema.GeneRows(run, []presence.SpecificGene{
		{Gene: "g1", Annotation: "hypothetical protein"},
		{Gene: "g2"},
	})
	require.Len(t, genes, 2)
	assert.Equal(2, genes[1].Ord)
	assert.Equal(schema.RowID(run, "g1"), genes[0].ID)
	assert.NotEqual(genes[0].ID, genes[1].ID)
	assert.NotEqual(schema.RowID("other", "g1"), genes[0].ID)

	regions := schema.RegionRows(run, []conserved.Region{
		{Gene: "g1", Start: 3, End: 102, Length: 100, Consensus: "ACGT"},
		{Gene: "g2"},
	})
	assert.Equal("standard", regions[0].LengthClass)
	assert.Equal(102, regions[0].EndPos)
	assert.Equal("none", regions[1].LengthClass)

	primers := schema.PrimerRows(run, []quality.Ranked{{
		Score: quality.Score{
			Pair: primer3.PrimerPair{
				SequenceID: "g1", PairIndex: 1, ProductSize: 120,
				Left: primer3.Primer{Sequence: "ACGT", Tm: 60},
			},
			Quality: 88, Grade: "A",
		},
		RankInGroup: 1, GlobalRank: 3,
	}})
	require.Len(t, primers, 1)
	p := primers[0]
	assert.Equal(schema.RowID(run, "g1_pair_1"), p.ID)
	assert.Equal("ACGT", p.LeftSequence)
	assert.Equal(88.0, p.QualityScore)
	assert.Equal(3, p.GlobalRank)
}
