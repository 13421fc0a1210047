package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// OpenError creates an error for a sqlite file that cannot be opened.
func OpenError(path string, err error) error {
	msg := "Cannot open sqlite store <em>%s</em>"
	vars := []any{path}

	return &gn.Error{
		Code: errcode.StoreOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("open sqlite %s: %w", path, err),
	}
}

// InitError creates an error for a table that cannot be created.
func InitError(table string, err error) error {
	msg := "Cannot create table <em>%s</em> in sqlite store"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StoreInitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("create table %s: %w", table, err),
	}
}

// SaveError creates an error for rows that could not be saved.
func SaveError(table string, rows int, err error) error {
	msg := "Cannot save %d rows to <em>%s</em>"
	vars := []any{rows, table}

	return &gn.Error{
		Code: errcode.StoreSaveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("save %d rows to %s: %w", rows, table, err),
	}
}
