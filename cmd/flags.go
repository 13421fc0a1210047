package cmd

import (
	"fmt"
	"os"

	gnprimer "github.com/gnames/gnprimer/pkg"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnprimer.Version, gnprimer.Build)
		os.Exit(0)
	}
}

// persistentFlagOptions converts root flags that were set on the command
// line to config options.
func persistentFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if s, err := flags.GetString("output"); err == nil {
		// output directory is runtime-only, it always comes from the flag
		res = append(res, config.OptOutputDir(s))
	}
	if flags.Changed("jobs") {
		i, _ := flags.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	if flags.Changed("store") {
		s, _ := flags.GetString("store")
		res = append(res, config.OptStoreBackend(s))
	}
	if flags.Changed("sqlite-path") {
		s, _ := flags.GetString("sqlite-path")
		res = append(res, config.OptStoreSQLitePath(s))
	}
	return res
}

// inputFlag adds the required --input flag.
func inputFlag(cmd *cobra.Command, input *string, usage string) {
	cmd.Flags().StringVarP(input, "input", "i", "", usage)
	_ = cmd.MarkFlagRequired("input")
}
