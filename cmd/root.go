/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/internal/iofs"
	"github.com/gnames/gnprimer/internal/iologger"
	app "github.com/gnames/gnprimer/pkg"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnprimer",
		Short:   "Finds genus-specific genes and ranks PCR primers designed for them",
		Long: `gnprimer is the analysis core of a genus-specific primer design
pipeline. External tools annotate genomes (Prokka), cluster them into a
pangenome (Roary), align candidate genes (MAFFT) and design primers
(primer3_core). gnprimer works on their outputs:

  genes         find genes present in every target genome and absent
                from every outgroup genome
  conserved     find the longest gap-free conserved window of each
                gene alignment
  design-input  create Primer3 input for usable conserved regions
  parse         convert Primer3 output to a table of primer pairs
  rank          score, grade and rank primer pairs

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNPRIMER_*)
  3. Config file (~/.config/gnprimer/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnprimer version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnprimer")

	pf := rootCmd.PersistentFlags()
	pf.StringP("output", "o", ".", "directory for result files")
	pf.IntP("jobs", "j", 0, "number of concurrent workers (default: CPU threads)")
	pf.String("store", "", "save results to 'none', 'sqlite' or 'postgres'")
	pf.String("sqlite-path", "", "sqlite store file (default: OUTPUT/gnprimer.sqlite)")

	rootCmd.AddCommand(
		getGenesCmd(),
		getConservedCmd(),
		getDesignInputCmd(),
		getParseCmd(),
		getRankCmd(),
		getConfigCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Persistent flags win over config file and environment.
	cfg.Update(persistentFlagOptions(cmd))

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
		"jobs", cfg.JobsNumber,
		"store", cfg.Store.Backend,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute creates the root command and runs it.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNPRIMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Selection configuration
	_ = v.BindEnv("selection.prefer_hypothetical", "GNPRIMER_SELECTION_PREFER_HYPOTHETICAL")
	_ = v.BindEnv("selection.min_hypothetical", "GNPRIMER_SELECTION_MIN_HYPOTHETICAL")
	_ = v.BindEnv("selection.hypothetical_marker", "GNPRIMER_SELECTION_HYPOTHETICAL_MARKER")

	// Window configuration
	_ = v.BindEnv("window.min_length", "GNPRIMER_WINDOW_MIN_LENGTH")
	_ = v.BindEnv("window.max_length", "GNPRIMER_WINDOW_MAX_LENGTH")

	// Store configuration
	_ = v.BindEnv("store.backend", "GNPRIMER_STORE_BACKEND")
	_ = v.BindEnv("store.sqlite_path", "GNPRIMER_STORE_SQLITE_PATH")

	// Database configuration
	_ = v.BindEnv("database.host", "GNPRIMER_DATABASE_HOST")
	_ = v.BindEnv("database.port", "GNPRIMER_DATABASE_PORT")
	_ = v.BindEnv("database.user", "GNPRIMER_DATABASE_USER")
	_ = v.BindEnv("database.password", "GNPRIMER_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "GNPRIMER_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "GNPRIMER_DATABASE_SSL_MODE")
	_ = v.BindEnv("database.batch_size", "GNPRIMER_DATABASE_BATCH_SIZE")

	// Log configuration
	_ = v.BindEnv("log.level", "GNPRIMER_LOG_LEVEL")
	_ = v.BindEnv("log.format", "GNPRIMER_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "GNPRIMER_LOG_DESTINATION")

	// Output configuration
	_ = v.BindEnv("output.format", "GNPRIMER_OUTPUT_FORMAT")

	// General configuration
	_ = v.BindEnv("jobs_number", "GNPRIMER_JOBS_NUMBER")

	v.AutomaticEnv()
}
