package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
// Window bounds that end up crossed are reset to defaults.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.Window.MinLength > c.Window.MaxLength {
		gn.Warn(
			"<em>Window</em> min length %d exceeds max length %d, "+
				"using defaults",
			c.Window.MinLength, c.Window.MaxLength,
		)
		c.Window = New().Window
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Genus, TargetPrefix, AllSpecific,
// Output.Dir).
// Used for round-tripping config.yaml <-> Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	res = append(res,
		OptSelectionPreferHypothetical(c.Selection.PreferHypothetical))
	i = c.Selection.MinHypothetical
	if i > 0 {
		res = append(res, OptSelectionMinHypothetical(i))
	}
	s = c.Selection.HypotheticalMarker
	if s != "" {
		res = append(res, OptSelectionHypotheticalMarker(s))
	}

	i = c.Window.MinLength
	if i > 0 {
		res = append(res, OptWindowMinLength(i))
	}
	i = c.Window.MaxLength
	if i > 0 {
		res = append(res, OptWindowMaxLength(i))
	}

	// zero sections are absent from config.yaml
	if c.Design != (primer3.Settings{}) {
		res = append(res, OptDesign(c.Design))
	}
	if c.Scoring.Weights != (quality.Weights{}) {
		res = append(res, OptScoringWeights(c.Scoring.Weights))
	}
	if c.Scoring.Ideals != (quality.Ideals{}) {
		res = append(res, OptScoringIdeals(c.Scoring.Ideals))
	}

	s = c.Store.Backend
	if s != "" {
		res = append(res, OptStoreBackend(s))
	}
	s = c.Store.SQLitePath
	if s != "" {
		res = append(res, OptStoreSQLitePath(s))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	s = c.Output.Format
	if s != "" {
		res = append(res, OptOutputFormat(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Store.Backend": {"none": s, "sqlite": s, "postgres": s},
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
		"Output.Format":   {"csv": s, "json": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
