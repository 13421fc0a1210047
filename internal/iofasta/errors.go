package iofasta

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// ReadFileError creates an error for an alignment file that cannot be read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read alignment <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// FastaFormatError creates an error for malformed FASTA text.
func FastaFormatError(gene string, line int, reason string) error {
	msg := "Alignment of <em>%s</em> is not valid FASTA (line %d: %s)"
	vars := []any{gene, line, reason}

	return &gn.Error{
		Code: errcode.FastaFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("fasta %s line %d: %s", gene, line, reason),
	}
}
