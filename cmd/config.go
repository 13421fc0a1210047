package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Prints configuration after applying config.yaml, GNPRIMER_*
environment variables and command line flags.

Configuration file: ~/.config/gnprimer/config.yaml
It is created with default values on the first run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := configYAML(cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Configuration file: <em>%s</em>",
				config.ConfigFilePath(cfg.HomeDir))
			fmt.Print(out)
			return nil
		},
	}
	return configCmd
}

// configYAML renders persistent configuration fields as YAML.
func configYAML(c *config.Config) (string, error) {
	res, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("cannot render configuration: %w", err)
	}
	return string(res), nil
}
