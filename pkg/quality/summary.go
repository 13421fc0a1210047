package quality

// Summary holds descriptive statistics of a ranked primer set.
type Summary struct {
	Total int

	// High counts scores >= 80, Medium 70 to 80, Low below 70.
	High   int
	Medium int
	Low    int

	MeanScore float64
	MaxScore  float64
	MinScore  float64

	MeanLeftTm      float64
	MeanRightTm     float64
	MeanLeftGC      float64
	MeanRightGC     float64
	MeanProductSize float64

	// WithDimer counts pairs that carried dimer data.
	WithDimer      int
	MeanDimerScore float64
	// GoodDimer counts dimer scores >= 80.
	GoodDimer int
}

// Summarize computes statistics of ranked primers.
func Summarize(rr []Ranked) Summary {
	var res Summary
	if len(rr) == 0 {
		return res
	}

	res.Total = len(rr)
	res.MaxScore = rr[0].Quality
	res.MinScore = rr[0].Quality

	var dimerSum float64
	for _, r := range rr {
		q := r.Quality
		switch {
		case q >= 80:
			res.High++
		case q >= 70:
			res.Medium++
		default:
			res.Low++
		}
		res.MeanScore += q
		res.MaxScore = max(res.MaxScore, q)
		res.MinScore = min(res.MinScore, q)

		res.MeanLeftTm += r.Pair.Left.Tm
		res.MeanRightTm += r.Pair.Right.Tm
		res.MeanLeftGC += r.Pair.Left.GC
		res.MeanRightGC += r.Pair.Right.GC
		res.MeanProductSize += float64(r.Pair.ProductSize)

		if r.Pair.HasDimer {
			res.WithDimer++
			dimerSum += r.DimerScore
			if r.DimerScore >= 80 {
				res.GoodDimer++
			}
		}
	}

	n := float64(res.Total)
	res.MeanScore /= n
	res.MeanLeftTm /= n
	res.MeanRightTm /= n
	res.MeanLeftGC /= n
	res.MeanRightGC /= n
	res.MeanProductSize /= n
	if res.WithDimer > 0 {
		res.MeanDimerScore = dimerSum / float64(res.WithDimer)
	}
	return res
}
