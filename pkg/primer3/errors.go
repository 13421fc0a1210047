package primer3

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// PartialParseError creates an error for a Primer3 field that could not be
// converted. A pairIndex of -1 means the field belongs to the record itself.
// The error is recorded in the parse Result, it does not stop parsing.
func PartialParseError(
	seqID string,
	pairIndex int,
	key string,
	err error,
) error {
	msg := "Cannot parse <em>%s</em> for sequence <em>%s</em>, pair %d"
	vars := []any{key, seqID, pairIndex}

	return &gn.Error{
		Code: errcode.PartialParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot parse %s (sequence %s, pair %d): %w",
			key, seqID, pairIndex, err),
	}
}

// NoPrimerPairError creates an error for Primer3 output that did not
// produce a single primer pair.
func NoPrimerPairError(blocks int) error {
	msg := `No primer pairs found in <em>%d</em> Primer3 records

<em>Possible causes:</em>
  - conserved regions are too short for the design settings
  - Primer3 failed for every template

<em>How to fix:</em>
  1. Check PRIMER_ERROR lines in Primer3 output
  2. Relax design settings or include more genes (--all-specific)`

	vars := []any{blocks}

	return &gn.Error{
		Code: errcode.NoPrimerPairError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no primer pairs in %d records", blocks),
	}
}
