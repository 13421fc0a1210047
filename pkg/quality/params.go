package quality

import "math"

// Weights of the ten sub-scores in the composite quality score.
type Weights struct {
	ProductSize float64 `mapstructure:"product_size" yaml:"product_size"`
	Tm          float64 `mapstructure:"tm"           yaml:"tm"`
	GC          float64 `mapstructure:"gc"           yaml:"gc"`
	TmDiff      float64 `mapstructure:"tm_diff"      yaml:"tm_diff"`
	Length      float64 `mapstructure:"length"       yaml:"length"`
	GCDiff      float64 `mapstructure:"gc_diff"      yaml:"gc_diff"`
	SelfAny     float64 `mapstructure:"self_any"     yaml:"self_any"`
	SelfEnd     float64 `mapstructure:"self_end"     yaml:"self_end"`
	Hairpin     float64 `mapstructure:"hairpin"      yaml:"hairpin"`
	PairCompl   float64 `mapstructure:"pair_compl"   yaml:"pair_compl"`
}

// DefaultWeights returns weights that sum to 1.0.
func DefaultWeights() Weights {
	return Weights{
		ProductSize: 0.10,
		Tm:          0.15,
		GC:          0.15,
		TmDiff:      0.10,
		Length:      0.10,
		GCDiff:      0.05,
		SelfAny:     0.10,
		SelfEnd:     0.10,
		Hairpin:     0.05,
		PairCompl:   0.10,
	}
}

func (w Weights) values() []float64 {
	return []float64{
		w.ProductSize, w.Tm, w.GC, w.TmDiff, w.Length,
		w.GCDiff, w.SelfAny, w.SelfEnd, w.Hairpin, w.PairCompl,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var res float64
	for _, v := range w.values() {
		res += v
	}
	return res
}

// Valid is true when no weight is negative and at least one is positive.
func (w Weights) Valid() bool {
	for _, v := range w.values() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return w.Sum() > 0
}

// Target is an ideal value with an acceptable range. Inside the range the
// closeness is 1 - min(|v - Ideal|, Scale)/Scale.
type Target struct {
	Ideal float64 `mapstructure:"ideal" yaml:"ideal"`
	Min   float64 `mapstructure:"min"   yaml:"min"`
	Max   float64 `mapstructure:"max"   yaml:"max"`
	Scale float64 `mapstructure:"scale" yaml:"scale"`
}

func (t Target) valid() bool {
	return t.Scale > 0 && t.Min <= t.Max
}

func (t Target) closeness(v, floor float64) float64 {
	if v < t.Min || v > t.Max {
		return floor
	}
	d := math.Min(math.Abs(v-t.Ideal), t.Scale)
	return clip(1-d/t.Scale, 0, 1)
}

// Ideals holds ideal values, ranges and caps of the sub-scores.
type Ideals struct {
	ProductSize Target `mapstructure:"product_size" yaml:"product_size"`
	Tm          Target `mapstructure:"tm"           yaml:"tm"`
	GC          Target `mapstructure:"gc"           yaml:"gc"`
	Length      Target `mapstructure:"length"       yaml:"length"`

	MaxTmDiff float64 `mapstructure:"max_tm_diff" yaml:"max_tm_diff"`
	MaxGCDiff float64 `mapstructure:"max_gc_diff" yaml:"max_gc_diff"`

	MaxSelfAny   float64 `mapstructure:"max_self_any"   yaml:"max_self_any"`
	MaxSelfEnd   float64 `mapstructure:"max_self_end"   yaml:"max_self_end"`
	MaxHairpin   float64 `mapstructure:"max_hairpin"    yaml:"max_hairpin"`
	MaxPairCompl float64 `mapstructure:"max_pair_compl" yaml:"max_pair_compl"`

	// Floor is the sub-score given to values outside of their range.
	Floor float64 `mapstructure:"out_of_range_floor" yaml:"out_of_range_floor"`
}

// DefaultIdeals returns the ideal parameters of a diagnostic PCR primer
// pair.
func DefaultIdeals() Ideals {
	return Ideals{
		ProductSize:  Target{Ideal: 100, Min: 80, Max: 200, Scale: 50},
		Tm:           Target{Ideal: 60, Min: 55, Max: 65, Scale: 10},
		GC:           Target{Ideal: 50, Min: 40, Max: 60, Scale: 20},
		Length:       Target{Ideal: 20, Min: 18, Max: 25, Scale: 10},
		MaxTmDiff:    5,
		MaxGCDiff:    10,
		MaxSelfAny:   8,
		MaxSelfEnd:   3,
		MaxHairpin:   40,
		MaxPairCompl: 8,
		Floor:        0.3,
	}
}

// Valid reports whether every scale and cap is positive, every range is
// ordered and the floor is inside [0,1].
func (i Ideals) Valid() bool {
	for _, t := range []Target{i.ProductSize, i.Tm, i.GC, i.Length} {
		if !t.valid() {
			return false
		}
	}
	caps := []float64{
		i.MaxTmDiff, i.MaxGCDiff, i.MaxSelfAny,
		i.MaxSelfEnd, i.MaxHairpin, i.MaxPairCompl,
	}
	for _, v := range caps {
		if !(v > 0) {
			return false
		}
	}
	return i.Floor >= 0 && i.Floor <= 1
}

func clip(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
