package ioconserved

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// ReadDirError creates an error for an alignment directory that cannot be
// listed.
func ReadDirError(dir string, err error) error {
	msg := "Cannot read alignments directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read dir %s: %w", dir, err),
	}
}

// NoAlignmentsError creates an error for a directory without alignment
// files.
func NoAlignmentsError(dir string) error {
	msg := `No alignment files in <em>%s</em>

Expected names are <em>GENE_aln.fasta</em>, <em>GENE_aln.fa</em> or
<em>GENE_aln.fas</em>, optionally gzipped.`
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.EmptyInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no alignments in %s", dir),
	}
}
