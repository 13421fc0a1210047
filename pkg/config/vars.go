package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnprimer"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnprimer by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnprimer by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnprimer/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnprimer/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the sqlite store file. An explicit Store.SQLitePath
// wins over the file in the output directory.
func (c *Config) SQLitePath() string {
	if c.Store.SQLitePath != "" {
		return c.Store.SQLitePath
	}
	return filepath.Join(c.Output.Dir, AppName+".sqlite")
}
