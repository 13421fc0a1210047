package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue

<em>How to fix:</em>
  1. Ensure the store is connected
  2. Check database configuration`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// MigrateSchemaError creates an error for failures to create or update
// result tables.
func MigrateSchemaError(err error) error {
	msg := `Cannot create result tables

<em>Possible causes:</em>
  - Insufficient database permissions
  - Tables with the same names but different columns

<em>How to fix:</em>
  1. Check database user has CREATE permissions
  2. Use a dedicated database for gnprimer results`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}
