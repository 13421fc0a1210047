// Package quality scores primer pairs with a ten-dimension weighted fitness
// function, grades them and ranks them inside their template and globally.
//
// Scoring of a pair does not depend on any other pair, so ScoreAll fans the
// work out and merges the results back in input order before ranking.
package quality

import (
	"math"

	"github.com/gnames/gnprimer/pkg/primer3"
)

// SubScores are the ten independent components of the quality score, each
// in [0,1]. Dimer components are zero when the pair has no dimer data.
type SubScores struct {
	ProductSize float64
	Tm          float64
	TmDiff      float64
	GC          float64
	GCDiff      float64
	Length      float64
	SelfAny     float64
	SelfEnd     float64
	Hairpin     float64
	PairCompl   float64
}

// Score is the evaluation of one primer pair.
type Score struct {
	Pair primer3.PrimerPair
	Sub  SubScores

	// Quality is the composite score in [0,100].
	Quality float64

	// Grade is the letter grade of Quality.
	Grade string

	// DimerScore is in [0,100], it is zero when Pair.HasDimer is false.
	DimerScore float64
}

// Ranked is a Score with its ranks. Ranks are 1-based.
type Ranked struct {
	Score
	RankInGroup int
	GlobalRank  int
}

// Scorer computes quality scores with fixed weights and ideal parameters.
type Scorer struct {
	weights Weights
	ideals  Ideals
}

// New creates a Scorer. It returns ConfigurationError for negative weights
// or inconsistent ideal parameters.
func New(w Weights, i Ideals) (*Scorer, error) {
	if !w.Valid() {
		return nil, InvalidWeightsError(w)
	}
	if !i.Valid() {
		return nil, InvalidIdealsError(i)
	}
	return &Scorer{weights: w, ideals: i}, nil
}

// NewDefault creates a Scorer with default weights and ideals.
func NewDefault() *Scorer {
	return &Scorer{weights: DefaultWeights(), ideals: DefaultIdeals()}
}

// Score evaluates one primer pair.
func (s *Scorer) Score(p primer3.PrimerPair) Score {
	id, w := s.ideals, s.weights
	floor := id.Floor

	var sub SubScores
	sub.ProductSize = id.ProductSize.closeness(float64(p.ProductSize), floor)
	sub.Tm = mean(
		id.Tm.closeness(p.Left.Tm, floor),
		id.Tm.closeness(p.Right.Tm, floor),
	)
	sub.TmDiff = capped(p.TmDiff(), id.MaxTmDiff)
	sub.GC = mean(
		id.GC.closeness(p.Left.GC, floor),
		id.GC.closeness(p.Right.GC, floor),
	)
	sub.GCDiff = capped(p.GCDiff(), id.MaxGCDiff)
	sub.Length = mean(
		id.Length.closeness(float64(p.Left.Length), floor),
		id.Length.closeness(float64(p.Right.Length), floor),
	)

	total := sub.ProductSize*w.ProductSize +
		sub.Tm*w.Tm +
		sub.TmDiff*w.TmDiff +
		sub.GC*w.GC +
		sub.GCDiff*w.GCDiff +
		sub.Length*w.Length

	var dimer float64
	if p.HasDimer {
		sub.SelfAny = mean(
			capped(p.Left.SelfAny, id.MaxSelfAny),
			capped(p.Right.SelfAny, id.MaxSelfAny),
		)
		sub.SelfEnd = mean(
			capped(p.Left.SelfEnd, id.MaxSelfEnd),
			capped(p.Right.SelfEnd, id.MaxSelfEnd),
		)
		sub.Hairpin = mean(
			capped(p.Left.Hairpin, id.MaxHairpin),
			capped(p.Right.Hairpin, id.MaxHairpin),
		)
		// end complementarity is doubled
		sub.PairCompl = 0.4*capped(p.PairComplAny, id.MaxPairCompl) +
			0.6*capped(2*p.PairComplEnd, id.MaxPairCompl)

		total += sub.SelfAny*w.SelfAny +
			sub.SelfEnd*w.SelfEnd +
			sub.Hairpin*w.Hairpin +
			sub.PairCompl*w.PairCompl
		dimer = DimerScore(p)
	}

	q := clip(100*total, 0, 100)
	return Score{
		Pair:       p,
		Sub:        sub,
		Quality:    q,
		Grade:      Grade(q),
		DimerScore: dimer,
	}
}

// DimerScore summarizes self-dimer and pair complementarity risk in
// [0,100]. Pairs without dimer data score 0.
func DimerScore(p primer3.PrimerPair) float64 {
	if !p.HasDimer {
		return 0
	}
	risk := (p.Left.SelfAny + p.Right.SelfAny + 2*p.PairComplAny) / 24
	return clip(100*(1-risk), 0, 100)
}

// Grade converts a quality score to a letter grade.
func Grade(q float64) string {
	switch {
	case q >= 90:
		return "A+"
	case q >= 85:
		return "A"
	case q >= 80:
		return "B+"
	case q >= 75:
		return "B"
	case q >= 70:
		return "C+"
	case q >= 65:
		return "C"
	default:
		return "D"
	}
}

// capped returns 1 - min(v, limit)/limit clipped to [0,1].
func capped(v, limit float64) float64 {
	return clip(1-math.Min(v, limit)/limit, 0, 1)
}

func mean(a, b float64) float64 {
	return (a + b) / 2
}
