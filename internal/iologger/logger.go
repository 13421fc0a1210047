// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/logger"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "gnprimer.log"

// Init initializes the global slog logger with the given configuration.
// Creates log file in logDir if destination is "file". The file is
// rewritten every time the logger starts.
func Init(logDir string, cfg config.LogConfig) error {
	var writer io.Writer

	switch cfg.Destination {
	case "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		file, err := os.Create(logPath)
		if err != nil {
			return CreateLogFileError(logPath, err)
		}
		writer = file
	default:
		writer = os.Stderr
	}

	slog.SetDefault(logger.New(writer, cfg))
	return nil
}
