package ioschema

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"gorm", GORMConnectionError(cause), errcode.SchemaGORMConnectionError},
		{"migrate", MigrateSchemaError(cause), errcode.SchemaCreateError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
	}
	assert.ErrorIs(t, MigrateSchemaError(cause).(*gn.Error).Err, cause)
}

func TestMigrateNotConnected(t *testing.T) {
	err := NewManager(nil).Migrate(context.Background())
	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}
