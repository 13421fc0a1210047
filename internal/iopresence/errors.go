package iopresence

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// ReadFileError creates an error for a presence table that cannot be
// opened or is not valid CSV.
func ReadFileError(path string, err error) error {
	msg := "Cannot read presence/absence table <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}
