package cmd

import (
	"log/slog"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/spf13/cobra"
)

// getDesignInputCmd returns the design-input command.
func getDesignInputCmd() *cobra.Command {
	var input string

	designCmd := &cobra.Command{
		Use:   "design-input",
		Short: "Create Primer3 input from conserved regions",
		Long: `Creates Boulder-IO input for primer3_core from a conserved regions
table. Regions shorter or longer than design.min_region_length and
design.max_region_length (config.yaml) are not used. Primer size, Tm, GC
and product size settings come from the design section of config.yaml.

Results:
  primer3_input.txt

Examples:
  gnprimer design-input -i conserved_regions.txt
  primer3_core < primer3_input.txt > primer3_output.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runDesignInput(input)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inputFlag(designCmd, &input, "conserved_regions.txt file")
	return designCmd
}

func runDesignInput(input string) error {
	regions, err := iooutput.ReadRegions(input)
	if err != nil {
		return err
	}

	var templates []primer3.Template
	for _, v := range regions {
		if v.Found() {
			templates = append(templates, primer3.Template{
				ID:       v.Gene,
				Sequence: v.Consensus,
			})
		}
	}

	text, n := primer3.BuildInput(templates, cfg.Design)
	slog.Info("Primer3 input created",
		"regions", len(regions),
		"with_window", len(templates),
		"templates", n,
	)
	if n == 0 {
		gn.Warn(
			"No regions between <em>%d</em> and <em>%d</em> bp, "+
				"Primer3 input is empty",
			cfg.Design.MinRegionLength, cfg.Design.MaxRegionLength,
		)
	}

	path, err := iooutput.WritePrimer3Input(cfg.Output.Dir, text)
	if err != nil {
		return err
	}

	gn.Info("Primer3 templates: <em>%d</em> of %d regions\nResults: <em>%s</em>",
		n, len(regions), path)
	return nil
}
