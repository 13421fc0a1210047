// Package config provides configuration management for gnprimer.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Selection: prefer_hypothetical, min_hypothetical, hypothetical_marker
//   - Window: min_length, max_length
//   - Design: Primer3 input settings
//   - Scoring: weights and ideals
//   - Store: backend, sqlite_path
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - Output: format
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Selection.Genus, Selection.TargetPrefix, Selection.AllSpecific
//   - Output.Dir
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNPRIMER_ prefix with underscores for nesting:
//
//	GNPRIMER_STORE_BACKEND=sqlite
//	GNPRIMER_DATABASE_HOST=localhost
//	GNPRIMER_LOG_LEVEL=info
//	GNPRIMER_JOBS_NUMBER=8
package config

import (
	"runtime"

	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
)

// Config represents the complete gnprimer configuration.
type Config struct {
	// Selection decides which specific genes go to primer design.
	Selection SelectionConfig `mapstructure:"selection" yaml:"selection"`

	// Window bounds the conserved region search.
	Window WindowConfig `mapstructure:"window" yaml:"window"`

	// Design holds Primer3 input settings.
	Design primer3.Settings `mapstructure:"design" yaml:"design"`

	// Scoring holds weights and ideal values of primer quality scores.
	Scoring ScoringConfig `mapstructure:"scoring" yaml:"scoring"`

	// Store selects where results are persisted besides output files.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Database contains PostgreSQL connection settings of the postgres
	// store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// SelectionConfig contains settings of target-specific gene selection.
type SelectionConfig struct {
	// Genus is the name of the target genus. Runtime only.
	Genus string `mapstructure:"-" yaml:"-"`

	// TargetPrefix overrides the sample prefix derived from Genus.
	// Runtime only.
	TargetPrefix string `mapstructure:"-" yaml:"-"`

	// AllSpecific uses every specific gene regardless of annotation.
	// Runtime only.
	AllSpecific bool `mapstructure:"-" yaml:"-"`

	// PreferHypothetical selects genes annotated as hypothetical proteins
	// when there are enough of them.
	PreferHypothetical bool `mapstructure:"prefer_hypothetical" yaml:"prefer_hypothetical"`

	// MinHypothetical is the smallest number of hypothetical genes that
	// is used on its own.
	MinHypothetical int `mapstructure:"min_hypothetical" yaml:"min_hypothetical"`

	// HypotheticalMarker is the annotation substring of uncharacterized
	// genes.
	HypotheticalMarker string `mapstructure:"hypothetical_marker" yaml:"hypothetical_marker"`
}

// WindowConfig bounds the length of conserved windows.
type WindowConfig struct {
	MinLength int `mapstructure:"min_length" yaml:"min_length"`
	MaxLength int `mapstructure:"max_length" yaml:"max_length"`
}

// ScoringConfig contains parameters of the primer quality score.
type ScoringConfig struct {
	Weights quality.Weights `mapstructure:"weights" yaml:"weights"`
	Ideals  quality.Ideals  `mapstructure:"ideals"  yaml:"ideals"`
}

// StoreConfig selects the result store.
type StoreConfig struct {
	// Backend is 'none', 'sqlite' or 'postgres'.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// SQLitePath is the database file of the sqlite backend. When empty,
	// gnprimer.sqlite in the output directory is used.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent to PostgreSQL in one copy
	// operation.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), stderr or stdout
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// OutputConfig sets where and how result tables are written.
type OutputConfig struct {
	// Dir is the output directory. Runtime only.
	Dir string `mapstructure:"-" yaml:"-"`

	// Format of ranked primers, 'csv' or 'json'.
	Format string `mapstructure:"format" yaml:"format"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Selection: SelectionConfig{
			PreferHypothetical: true,
			MinHypothetical:    5,
			HypotheticalMarker: "hypothetical protein",
		},
		Window: WindowConfig{
			MinLength: conserved.DefaultMinLength,
			MaxLength: conserved.DefaultMaxLength,
		},
		Design: primer3.DefaultSettings(),
		Scoring: ScoringConfig{
			Weights: quality.DefaultWeights(),
			Ideals:  quality.DefaultIdeals(),
		},
		Store: StoreConfig{
			Backend: "none",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnprimer",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Output: OutputConfig{
			Dir:    ".",
			Format: "csv",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
