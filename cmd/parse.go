package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/internal/iofs"
	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/spf13/cobra"
)

// getParseCmd returns the parse command.
func getParseCmd() *cobra.Command {
	var input string

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Convert Primer3 output to a table of primer pairs",
		Long: `Reads Boulder-IO output of primer3_core and writes every primer
pair with its properties to a CSV table. Records without primer pairs are
reported as warnings, malformed pairs are skipped.

Results:
  parsed_primers.csv

Examples:
  gnprimer parse -i primer3_output.txt -o results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runParse(input)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inputFlag(parseCmd, &input, "primer3_core output file")
	return parseCmd
}

func runParse(input string) error {
	start := time.Now()
	res, err := parsePrimer3(input)
	if err != nil {
		return err
	}

	path, err := iooutput.WriteParsedPrimers(cfg.Output.Dir, res.Pairs)
	if err != nil {
		return err
	}

	gn.Info(`Primer pairs: <em>%s</em> from %d records
Results: <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(len(res.Pairs))), res.Blocks, path,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// parsePrimer3 reads and parses Primer3 output. It returns
// NoPrimerPairError when the output has no usable pairs.
func parsePrimer3(input string) (primer3.Result, error) {
	raw, err := os.ReadFile(input)
	if err != nil {
		return primer3.Result{}, iofs.ReadFileError(input, err)
	}

	res := primer3.ParseBlocks(string(raw), cfg.JobsNumber)
	for _, v := range res.Issues {
		slog.Warn("Primer pair skipped", "error", v)
	}
	for _, v := range res.Warnings {
		slog.Warn("No primer pairs", "sequence_id", v.SequenceID, "reason", v.Message)
	}
	if len(res.Issues) > 0 {
		gn.Warn("Skipped <em>%d</em> malformed primer pairs", len(res.Issues))
	}
	if len(res.Warnings) > 0 {
		gn.Warn("<em>%d</em> templates have no primer pairs", len(res.Warnings))
	}

	if len(res.Pairs) == 0 {
		return res, primer3.NoPrimerPairError(res.Blocks)
	}
	slog.Info("Primer3 output parsed",
		"input", input,
		"records", res.Blocks,
		"pairs", len(res.Pairs),
	)
	return res, nil
}
