package conserved

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// WindowBoundsError creates an error for window bounds that cannot be
// searched.
func WindowBoundsError(minLen, maxLen int) error {
	msg := `Invalid conserved window bounds: min <em>%d</em>, max <em>%d</em>

Both bounds must be positive and min must not exceed max`

	vars := []any{minLen, maxLen}

	return &gn.Error{
		Code: errcode.ConfigurationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid window bounds %d..%d", minLen, maxLen),
	}
}

// AlignmentShapeError creates an error for an alignment with rows of
// different lengths.
func AlignmentShapeError(gene, rowID string, want, got int) error {
	msg := `Alignment of <em>%s</em> is not rectangular

Row <em>%s</em> has %d columns, expected %d`

	vars := []any{gene, rowID, got, want}

	return &gn.Error{
		Code: errcode.AlignmentShapeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"alignment %s: row %s length %d, expected %d",
			gene, rowID, got, want,
		),
	}
}

// InsufficientSequencesError creates an error for an alignment with fewer
// than two rows.
func InsufficientSequencesError(gene string, rows int) error {
	msg := "Alignment of <em>%s</em> has %d sequences, at least 2 are needed"
	vars := []any{gene, rows}

	return &gn.Error{
		Code: errcode.InsufficientSequencesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("alignment %s: %d rows", gene, rows),
	}
}

// NoConservedRegionError creates an error for a run in which no alignment
// had a conserved window.
func NoConservedRegionError(alignments, minLen int) error {
	msg := `No conserved region of at least <em>%d</em> bp in %d alignments

<em>How to fix:</em>
  1. Lower the minimum window length (window.min_length)
  2. Include more genes (--all-specific)`

	vars := []any{minLen, alignments}

	return &gn.Error{
		Code: errcode.NoConservedRegionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no conserved region >= %d bp in %d alignments", minLen, alignments,
		),
	}
}
