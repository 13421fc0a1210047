package presence

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// EmptyPrefixError creates an error for a missing target sample prefix.
func EmptyPrefixError() error {
	msg := `Target sample prefix is empty

<em>How to fix:</em>
  1. Give a genus name with --genus
  2. Or set the prefix with --prefix`

	return &gn.Error{
		Code: errcode.ConfigurationError,
		Msg:  msg,
		Err:  errors.New("empty target prefix"),
	}
}

// NoTargetSamplesError creates an error for a matrix without columns of
// the target group.
func NoTargetSamplesError(prefix string, others int) error {
	msg := `No sample columns start with <em>%s</em>

%d other sample columns found. Target genome files must be named
with the genus prefix before running the pangenome analysis`

	vars := []any{prefix, others}

	return &gn.Error{
		Code: errcode.NoTargetSamplesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no target samples with prefix %q", prefix),
	}
}

// MissingColumnError creates an error for a gene row without a value for a
// sample, or a table without a required column.
func MissingColumnError(gene, column string) error {
	msg := "Column <em>%s</em> is missing"
	vars := []any{column}
	if gene != "" {
		msg = "Gene <em>%s</em> has no column <em>%s</em>"
		vars = []any{gene, column}
	}

	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("gene %q: missing column %q", gene, column),
	}
}

// EmptyInputError creates an error for a matrix without gene rows.
func EmptyInputError() error {
	msg := "Presence/absence table has no gene rows"

	return &gn.Error{
		Code: errcode.EmptyInputError,
		Msg:  msg,
		Err:  errors.New("no gene rows"),
	}
}

// NoSpecificGeneError creates an error for a matrix in which no gene
// separates targets from outgroups.
func NoSpecificGeneError(rows, targets, outgroups int) error {
	msg := `No target-specific genes among <em>%d</em> genes

Targets: %d, outgroups: %d

<em>Possible causes:</em>
  - target genomes belong to several species
  - outgroup genomes are too close to the target genus`

	vars := []any{rows, targets, outgroups}

	return &gn.Error{
		Code: errcode.NoSpecificGeneError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no specific genes in %d rows (%d targets, %d outgroups)",
			rows, targets, outgroups,
		),
	}
}
