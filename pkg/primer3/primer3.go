// Package primer3 converts Primer3 Boulder-IO output into typed primer pair
// records and renders Boulder-IO input records for conserved templates.
//
// Primer3 output is a concatenation of records. Each record is a sequence of
// KEY=VALUE lines terminated by a line that contains only "=". Raw keys never
// leave this package: callers receive PrimerPair values.
package primer3

import "fmt"

// UnknownSequenceID is used for records that lack SEQUENCE_ID.
const UnknownSequenceID = "unknown"

// Primer describes one oligonucleotide of a pair.
type Primer struct {
	// Sequence of the primer in 5' to 3' direction.
	Sequence string

	// Start is the position of the primer on the template as reported by
	// Primer3 (0-based for the left primer, 3' end for the right primer).
	Start int

	// Length of the primer in nucleotides.
	Length int

	// Tm is the melting temperature.
	Tm float64

	// GC is the GC content in percent.
	GC float64

	// SelfAny is the self-complementarity (self-dimer) score.
	SelfAny float64

	// SelfEnd is the 3'-end self-complementarity score.
	SelfEnd float64

	// Hairpin is the hairpin (secondary structure) score.
	Hairpin float64

	// EndStability is the delta G of the five 3' bases.
	EndStability float64
}

// PrimerPair is a forward (left) and reverse (right) primer designed
// against one template.
type PrimerPair struct {
	// SequenceID is the SEQUENCE_ID of the Primer3 record (gene name).
	SequenceID string

	// PairIndex is the 0-based index of the pair inside its record.
	PairIndex int

	Left  Primer
	Right Primer

	// PairComplAny is the complementarity between left and right primers.
	PairComplAny float64

	// PairComplEnd is the 3'-end complementarity between the primers.
	PairComplEnd float64

	// ProductSize is the size of the amplified product in bp.
	ProductSize int

	// ProductTm is the melting temperature of the product.
	ProductTm float64

	// HasDimer is true when the record carried self-dimer, hairpin or
	// pair complementarity fields for this pair.
	HasDimer bool
}

// ID returns a unique identifier of the pair inside a run.
func (p PrimerPair) ID() string {
	return fmt.Sprintf("%s_pair_%d", p.SequenceID, p.PairIndex)
}

// TmDiff is the absolute difference between left and right Tm.
func (p PrimerPair) TmDiff() float64 {
	return absFloat(p.Left.Tm - p.Right.Tm)
}

// GCDiff is the absolute difference between left and right GC content.
func (p PrimerPair) GCDiff() float64 {
	return absFloat(p.Left.GC - p.Right.GC)
}

// LengthDiff is the absolute difference between left and right lengths.
func (p PrimerPair) LengthDiff() int {
	d := p.Left.Length - p.Right.Length
	if d < 0 {
		return -d
	}
	return d
}

// Warning is a soft, non-fatal notice about a record.
type Warning struct {
	SequenceID string
	Message    string
}

// Result is the outcome of parsing Primer3 output.
type Result struct {
	// Pairs in record order, then pair index order.
	Pairs []PrimerPair

	// Issues contains one PartialParseError per skipped pair or
	// malformed record field.
	Issues []error

	// Warnings lists records that yielded no primer pairs.
	Warnings []Warning

	// Blocks is the number of records found in the input.
	Blocks int
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
