package schema

import (
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnuuid"
)

// RowID returns a deterministic UUID v5 for a record of a run.
func RowID(runID, key string) string {
	return gnuuid.New(runID + "|" + key).String()
}

// GeneRows converts specific genes to table rows.
func GeneRows(runID string, genes []presence.SpecificGene) []SpecificGene {
	res := make([]SpecificGene, len(genes))
	for i, g := range genes {
		res[i] = SpecificGene{
			ID:         RowID(runID, g.Gene),
			RunID:      runID,
			Ord:        i + 1,
			Gene:       g.Gene,
			Annotation: g.Annotation,
		}
	}
	return res
}

// RegionRows converts conserved regions to table rows.
func RegionRows(runID string, regions []conserved.Region) []ConservedRegion {
	res := make([]ConservedRegion, len(regions))
	for i, r := range regions {
		res[i] = ConservedRegion{
			ID:          RowID(runID, r.Gene),
			RunID:       runID,
			Gene:        r.Gene,
			StartPos:    r.Start,
			EndPos:      r.End,
			Length:      r.Length,
			Consensus:   r.Consensus,
			LengthClass: r.Class(),
		}
	}
	return res
}

// PrimerRows converts ranked primer pairs to table rows.
func PrimerRows(runID string, primers []quality.Ranked) []RankedPrimer {
	res := make([]RankedPrimer, len(primers))
	for i, r := range primers {
		p := r.Pair
		res[i] = RankedPrimer{
			ID:            RowID(runID, p.ID()),
			RunID:         runID,
			SequenceID:    p.SequenceID,
			PairIndex:     p.PairIndex,
			LeftSequence:  p.Left.Sequence,
			RightSequence: p.Right.Sequence,
			LeftTm:        p.Left.Tm,
			RightTm:       p.Right.Tm,
			LeftGC:        p.Left.GC,
			RightGC:       p.Right.GC,
			ProductSize:   p.ProductSize,
			QualityScore:  r.Quality,
			Grade:         r.Grade,
			DimerScore:    r.DimerScore,
			RankInGroup:   r.RankInGroup,
			GlobalRank:    r.GlobalRank,
		}
	}
	return res
}
