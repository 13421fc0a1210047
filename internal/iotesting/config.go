// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"strconv"
	"testing"

	"github.com/gnames/gnprimer/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "gnprimer_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Database settings come from GNPRIMER_DATABASE_* environment variables
// or defaults, the database name is always TestDatabaseName.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("GNPRIMER_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("GNPRIMER_DATABASE_PORT"); s != "" {
		if i, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(i))
		}
	}
	if s := os.Getenv("GNPRIMER_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("GNPRIMER_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	opts = append(opts,
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptDatabaseBatchSize(2),
	)
	cfg.Update(opts)

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SkipIfShort skips integration tests in short mode.
func SkipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
}
