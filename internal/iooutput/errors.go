package iooutput

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

var (
	errFieldsNum = errors.New("expected at least 3 tab-separated fields")
	errPosition  = errors.New("position does not match length")
	errSequence  = errors.New("sequence does not match length")
)

// CreateDirError creates an error for an output directory that cannot be
// created.
func CreateDirError(dir string, err error) error {
	msg := "Cannot create output directory <em>%s</em>"
	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create directory %s: %w", dir, err),
	}
}

// WriteFileError creates an error for an output file that cannot be
// written.
func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write %s: %w", path, err),
	}
}

// ReadFileError creates an error for a result table that cannot be read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// RegionFormatError creates an error for a malformed line of a conserved
// regions table.
func RegionFormatError(path string, line int, err error) error {
	msg := "Malformed conserved region at <em>%s</em>, line %d"
	vars := []any{path, line}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: %w", path, line, err),
	}
}

// EncodeError creates an error for results that cannot be serialized.
func EncodeError(format string, err error) error {
	msg := "Cannot encode results to <em>%s</em>"
	vars := []any{format}

	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot encode to %s: %w", format, err),
	}
}
