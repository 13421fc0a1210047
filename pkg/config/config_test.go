package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnprimer"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnprimer"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnprimer", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnprimer", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.True(t, cfg.Selection.PreferHypothetical)
		assert.Equal(t, 5, cfg.Selection.MinHypothetical)
		assert.Equal(t, "hypothetical protein", cfg.Selection.HypotheticalMarker)

		assert.Equal(t, 50, cfg.Window.MinLength)
		assert.Equal(t, 500, cfg.Window.MaxLength)

		assert.Equal(t, primer3.DefaultSettings(), cfg.Design)
		assert.Equal(t, quality.DefaultWeights(), cfg.Scoring.Weights)
		assert.Equal(t, quality.DefaultIdeals(), cfg.Scoring.Ideals)

		assert.Equal(t, "none", cfg.Store.Backend)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gnprimer", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, ".", cfg.Output.Dir)
		assert.Equal(t, "csv", cfg.Output.Format)
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		msg   string
		opt   func(string) config.Option
		get   func(*config.Config) string
		input string
		want  string
	}{
		{"host", config.OptDatabaseHost,
			func(c *config.Config) string { return c.Database.Host },
			"  db.example.com ", "db.example.com"},
		{"empty host", config.OptDatabaseHost,
			func(c *config.Config) string { return c.Database.Host },
			"   ", "localhost"},
		{"genus", config.OptSelectionGenus,
			func(c *config.Config) string { return c.Selection.Genus },
			"Escherichia", "Escherichia"},
		{"prefix", config.OptSelectionTargetPrefix,
			func(c *config.Config) string { return c.Selection.TargetPrefix },
			"Esc_", "Esc_"},
		{"marker", config.OptSelectionHypotheticalMarker,
			func(c *config.Config) string { return c.Selection.HypotheticalMarker },
			"", "hypothetical protein"},
		{"backend", config.OptStoreBackend,
			func(c *config.Config) string { return c.Store.Backend },
			"SQLite", "sqlite"},
		{"bad backend", config.OptStoreBackend,
			func(c *config.Config) string { return c.Store.Backend },
			"mysql", "none"},
		{"ssl mode", config.OptDatabaseSSLMode,
			func(c *config.Config) string { return c.Database.SSLMode },
			"require", "require"},
		{"log level", config.OptLogLevel,
			func(c *config.Config) string { return c.Log.Level },
			"DEBUG", "debug"},
		{"bad log format", config.OptLogFormat,
			func(c *config.Config) string { return c.Log.Format },
			"xml", "json"},
		{"log destination", config.OptLogDestination,
			func(c *config.Config) string { return c.Log.Destination },
			"stderr", "stderr"},
		{"output format", config.OptOutputFormat,
			func(c *config.Config) string { return c.Output.Format },
			"json", "json"},
		{"output dir", config.OptOutputDir,
			func(c *config.Config) string { return c.Output.Dir },
			"results", "results"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{v.opt(v.input)})
			assert.Equal(t, v.want, v.get(cfg))
		})
	}
}

func TestIntOptions(t *testing.T) {
	tests := []struct {
		msg   string
		opt   func(int) config.Option
		get   func(*config.Config) int
		input int
		want  int
	}{
		{"port", config.OptDatabasePort,
			func(c *config.Config) int { return c.Database.Port }, 6543, 6543},
		{"zero port", config.OptDatabasePort,
			func(c *config.Config) int { return c.Database.Port }, 0, 5432},
		{"jobs", config.OptJobsNumber,
			func(c *config.Config) int { return c.JobsNumber }, 3, 3},
		{"min hypothetical", config.OptSelectionMinHypothetical,
			func(c *config.Config) int { return c.Selection.MinHypothetical }, 10, 10},
		{"negative window", config.OptWindowMinLength,
			func(c *config.Config) int { return c.Window.MinLength }, -5, 50},
		{"window max", config.OptWindowMaxLength,
			func(c *config.Config) int { return c.Window.MaxLength }, 300, 300},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{v.opt(v.input)})
			assert.Equal(t, v.want, v.get(cfg))
		})
	}
}

func TestCrossedWindow(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptWindowMinLength(600),
	})
	assert.Equal(t, 50, cfg.Window.MinLength)
	assert.Equal(t, 500, cfg.Window.MaxLength)

	cfg.Update([]config.Option{
		config.OptWindowMinLength(30),
		config.OptWindowMaxLength(40),
	})
	assert.Equal(t, 30, cfg.Window.MinLength)
	assert.Equal(t, 40, cfg.Window.MaxLength)
}

func TestStructOptions(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()

	s := primer3.DefaultSettings()
	s.OptTm = 62
	w := quality.DefaultWeights()
	w.Hairpin = 0.2
	i := quality.DefaultIdeals()
	i.Floor = 0.1
	cfg.Update([]config.Option{
		config.OptDesign(s),
		config.OptScoringWeights(w),
		config.OptScoringIdeals(i),
	})
	assert.Equal(62.0, cfg.Design.OptTm)
	assert.Equal(0.2, cfg.Scoring.Weights.Hairpin)
	assert.Equal(0.1, cfg.Scoring.Ideals.Floor)

	bad := primer3.DefaultSettings()
	bad.MinSize = 30
	w.Tm = -1
	i.Tm.Scale = 0
	cfg.Update([]config.Option{
		config.OptDesign(bad),
		config.OptScoringWeights(w),
		config.OptScoringIdeals(i),
	})
	assert.Equal(62.0, cfg.Design.OptTm)
	assert.Equal(18, cfg.Design.MinSize)
	assert.Equal(0.15, cfg.Scoring.Weights.Tm)
	assert.Equal(10.0, cfg.Scoring.Ideals.Tm.Scale)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptSelectionPreferHypothetical(false),
		config.OptSelectionMinHypothetical(7),
		config.OptWindowMaxLength(450),
		config.OptStoreBackend("postgres"),
		config.OptStoreSQLitePath("/tmp/x.sqlite"),
		config.OptDatabaseHost("db"),
		config.OptLogFormat("text"),
		config.OptOutputFormat("json"),
		config.OptJobsNumber(2),
		config.OptSelectionGenus("Bacillus"),
		config.OptOutputDir("out"),
		config.OptHomeDir("/home/me"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.False(t, dst.Selection.PreferHypothetical)
	assert.Equal(t, 7, dst.Selection.MinHypothetical)
	assert.Equal(t, 450, dst.Window.MaxLength)
	assert.Equal(t, "postgres", dst.Store.Backend)
	assert.Equal(t, "/tmp/x.sqlite", dst.Store.SQLitePath)
	assert.Equal(t, "db", dst.Database.Host)
	assert.Equal(t, "text", dst.Log.Format)
	assert.Equal(t, "json", dst.Output.Format)
	assert.Equal(t, 2, dst.JobsNumber)

	// runtime-only fields do not travel
	assert.Empty(t, dst.Selection.Genus)
	assert.Equal(t, ".", dst.Output.Dir)
	assert.Empty(t, dst.HomeDir)
}

func TestSQLitePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptOutputDir("res")})
	assert.Equal(t, filepath.Join("res", "gnprimer.sqlite"), cfg.SQLitePath())

	cfg.Update([]config.Option{config.OptStoreSQLitePath("/data/p.db")})
	assert.Equal(t, "/data/p.db", cfg.SQLitePath())
}

func TestToOptionsZeroSections(t *testing.T) {
	var src config.Config
	src.Window = config.WindowConfig{MinLength: 60, MaxLength: 300}

	dst := config.New()
	dst.Update(src.ToOptions())
	assert.Equal(t, 60, dst.Window.MinLength)
	assert.Equal(t, 300, dst.Window.MaxLength)
	assert.Equal(t, config.New().Design, dst.Design)
	assert.Equal(t, config.New().Scoring, dst.Scoring)
}
