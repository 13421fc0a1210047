package config

import (
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSelectionGenus sets the name of the target genus.
// Runtime-only field - not in ToOptions().
func OptSelectionGenus(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Genus", s) {
			c.Selection.Genus = s
		}
	}
}

// OptSelectionTargetPrefix sets the sample prefix of target genomes.
// Runtime-only field - not in ToOptions().
func OptSelectionTargetPrefix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Target Prefix", s) {
			c.Selection.TargetPrefix = s
		}
	}
}

// OptSelectionAllSpecific turns off annotation-based gene selection.
// Runtime-only field - not in ToOptions().
func OptSelectionAllSpecific(b bool) Option {
	return func(c *Config) {
		c.Selection.AllSpecific = b
	}
}

// OptSelectionPreferHypothetical sets whether hypothetical proteins are
// preferred.
func OptSelectionPreferHypothetical(b bool) Option {
	return func(c *Config) {
		c.Selection.PreferHypothetical = b
	}
}

// OptSelectionMinHypothetical sets the smallest number of hypothetical
// genes that is used on its own.
func OptSelectionMinHypothetical(i int) Option {
	return func(c *Config) {
		if isValidInt("Min Hypothetical", i) {
			c.Selection.MinHypothetical = i
		}
	}
}

// OptSelectionHypotheticalMarker sets the annotation substring of
// uncharacterized genes.
func OptSelectionHypotheticalMarker(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Hypothetical Marker", s) {
			c.Selection.HypotheticalMarker = s
		}
	}
}

// OptWindowMinLength sets the shortest conserved window.
func OptWindowMinLength(i int) Option {
	return func(c *Config) {
		if isValidInt("Window Min Length", i) {
			c.Window.MinLength = i
		}
	}
}

// OptWindowMaxLength sets the longest conserved window.
func OptWindowMaxLength(i int) Option {
	return func(c *Config) {
		if isValidInt("Window Max Length", i) {
			c.Window.MaxLength = i
		}
	}
}

// OptDesign sets Primer3 input settings. Inconsistent settings are
// ignored.
func OptDesign(s primer3.Settings) Option {
	return func(c *Config) {
		if !s.Valid() {
			gn.Warn("<em>Design</em> settings are inconsistent, ignoring")
			return
		}
		c.Design = s
	}
}

// OptScoringWeights sets weights of quality sub-scores.
func OptScoringWeights(w quality.Weights) Option {
	return func(c *Config) {
		if !w.Valid() {
			gn.Warn(
				"<em>Scoring Weights</em> must be non-negative " +
					"with a positive sum, ignoring",
			)
			return
		}
		c.Scoring.Weights = w
	}
}

// OptScoringIdeals sets ideal values and ranges of quality sub-scores.
func OptScoringIdeals(i quality.Ideals) Option {
	return func(c *Config) {
		if !i.Valid() {
			gn.Warn("<em>Scoring Ideals</em> are inconsistent, ignoring")
			return
		}
		c.Scoring.Ideals = i
	}
}

// OptStoreBackend sets the result store.
// Valid values: "none", "sqlite", "postgres".
func OptStoreBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.Backend", s) {
			c.Store.Backend = s
		}
	}
}

// OptStoreSQLitePath sets the file of the sqlite store.
func OptStoreSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("SQLite Path", s) {
			c.Store.SQLitePath = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per copy operation.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptOutputDir sets the directory of result files.
// Runtime-only field - not in ToOptions().
func OptOutputDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Directory", s) {
			c.Output.Dir = s
		}
	}
}

// OptOutputFormat sets the format of ranked primers.
// Valid values: "csv", "json".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
