package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/internal/ioconserved"
	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/errcode"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/spf13/cobra"
)

// getConservedCmd returns the conserved command.
func getConservedCmd() *cobra.Command {
	var (
		input  string
		minLen int
		maxLen int
	)

	conservedCmd := &cobra.Command{
		Use:   "conserved",
		Short: "Find conserved regions in gene alignments",
		Long: `Finds the longest window of every gene alignment in which all
sequences are identical and have no gaps. Comparison ignores letter case.
When windows of the same length compete, the leftmost one is taken.

Alignments are files named GENE_aln.fasta, GENE_aln.fa or GENE_aln.fas,
optionally gzipped. An alignment that cannot be read is reported and
skipped.

Results:
  conserved_regions.txt   Gene, Position (start-end or none), Length,
                          Sequence; positions are 1-based, inclusive

Examples:
  gnprimer conserved -i alignments
  gnprimer conserved -i alignments --min-length 80 -o results`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var windowOpts []config.Option
			if cmd.Flags().Changed("min-length") {
				windowOpts = append(windowOpts, config.OptWindowMinLength(minLen))
			}
			if cmd.Flags().Changed("max-length") {
				windowOpts = append(windowOpts, config.OptWindowMaxLength(maxLen))
			}
			cfg.Update(windowOpts)

			err := runConserved(input)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inputFlag(conservedCmd, &input, "directory with gene alignments")
	conservedCmd.Flags().IntVar(
		&minLen, "min-length", conserved.DefaultMinLength,
		"shortest conserved window (bp)",
	)
	conservedCmd.Flags().IntVar(
		&maxLen, "max-length", conserved.DefaultMaxLength,
		"longest conserved window (bp)",
	)

	return conservedCmd
}

func runConserved(input string) error {
	ctx := context.Background()
	start := time.Now()

	finder, err := conserved.New(cfg.Window.MinLength, cfg.Window.MaxLength)
	if err != nil {
		return err
	}

	sc := ioconserved.New(finder, cfg.JobsNumber, ioconserved.OptProgress(true))
	res, err := sc.Scan(ctx, input)
	if res.Failed > 0 {
		gn.Warn("Skipped <em>%d</em> alignments, see the log for details",
			res.Failed)
	}
	if err != nil && !isNoCandidate(err) {
		return err
	}

	// genes without a region are kept in the table
	path, werr := iooutput.WriteRegions(cfg.Output.Dir, res.Regions)
	if werr != nil {
		return werr
	}
	if err != nil {
		return err
	}

	run := store.NewRun("conserved", input)
	err = withStore(ctx, cfg, run, func(st store.Store) error {
		return st.SaveRegions(ctx, run.ID, res.Regions)
	})
	if err != nil {
		return err
	}

	classes := make(map[string]int)
	for _, v := range res.Regions {
		classes[v.Class()]++
	}
	slog.Info("Conserved region classes", "classes", classes)

	gn.Info(`Conserved regions: <em>%s</em> of %s alignments
  long (>= 200 bp): %d, standard (>= 100 bp): %d,
  acceptable (>= 80 bp): %d, short: %d
Results: <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(res.Found)),
		humanize.Comma(int64(len(res.Regions)+res.Failed)),
		classes["long"], classes["standard"],
		classes["acceptable"], classes["short"],
		path,
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}

// isNoCandidate reports whether err means that a step produced nothing
// rather than failed.
func isNoCandidate(err error) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	switch gnErr.Code {
	case errcode.NoSpecificGeneError, errcode.NoConservedRegionError,
		errcode.NoPrimerPairError:
		return true
	}
	return false
}
