package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlib"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
type ConnectionError struct {
	error
	gnlib.MessageBase
}

// NewConnectionError creates a connection error with user-friendly message.
func NewConnectionError(
	host string,
	port int,
	database, user string,
	cause error,
) error {
	userBase := gnlib.NewMessage(
		`<title>Database Connection Failed</title>

<warning>Could not connect to PostgreSQL database.</warning>

<em>Possible causes:</em>
  • PostgreSQL is not running
  • Database configuration is incorrect
  • Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify database exists:
     <em>psql -h %s -U %s -l</em>

  3. Check your configuration file:
     <em>~/.config/gnprimer/config.yaml</em>

  4. Or use another store backend:
     <em>gnprimer rank --store sqlite</em>

  Host: %s
  Port: %d
  Database: %s
  User: %s
`,
		[]any{
			host, port,
			host, user,
			host, port, database, user,
		},
	)

	return ConnectionError{
		error: fmt.Errorf(
			"failed to connect to %s:%d/%s: %w", host, port, database, cause,
		),
		MessageBase: userBase,
	}
}

// NotConnectedError creates an error for a store operation attempted
// before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for a failed table lookup.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.StoreBackendError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("table %s check: %w", table, err),
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
