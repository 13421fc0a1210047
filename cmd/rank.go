package cmd

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/spf13/cobra"
)

// getRankCmd returns the rank command.
func getRankCmd() *cobra.Command {
	var (
		input  string
		format string
		top    int
	)

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Score, grade and rank primer pairs from Primer3 output",
		Long: `Scores every primer pair of Primer3 output with a weighted
combination of ten properties: product size, Tm, GC content, primer length,
Tm and GC differences between primers, self-complementarity, 3'-end
complementarity, hairpins and primer-dimers. Scores are in [0,100] and
graded from A+ (>= 90) to D (< 65).

Pairs are ranked globally and inside each template, higher scores first.
Equal scores keep the order of Primer3 output. Weights and ideal values
are in the scoring section of config.yaml.

Results:
  ranked_primers.csv (or ranked_primers.json with --format json)

Examples:
  gnprimer rank -i primer3_output.txt
  gnprimer rank -i primer3_output.txt -f json --top 10 --store sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Update([]config.Option{config.OptOutputFormat(format)})
			}

			err := runRank(input, top)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inputFlag(rankCmd, &input, "primer3_core output file")
	rankCmd.Flags().StringVarP(
		&format, "format", "f", "csv",
		"format of ranked primers, 'csv' or 'json'",
	)
	rankCmd.Flags().IntVarP(
		&top, "top", "t", 5,
		"number of best pairs to show",
	)

	return rankCmd
}

func runRank(input string, top int) error {
	ctx := context.Background()
	start := time.Now()

	scorer, err := quality.New(cfg.Scoring.Weights, cfg.Scoring.Ideals)
	if err != nil {
		return err
	}

	res, err := parsePrimer3(input)
	if err != nil {
		return err
	}

	ranked := scorer.ScoreAll(res.Pairs, cfg.JobsNumber)
	path, err := iooutput.WriteRankedPrimers(
		cfg.Output.Dir, ranked, cfg.Output.Format,
	)
	if err != nil {
		return err
	}

	run := store.NewRun("rank", input)
	err = withStore(ctx, cfg, run, func(st store.Store) error {
		return st.SavePrimers(ctx, run.ID, ranked)
	})
	if err != nil {
		return err
	}

	sum := quality.Summarize(ranked)
	gn.Info(`Ranked primer pairs: <em>%s</em>
  high (>= 80): %s, medium (70-80): %s, low (< 70): %s
  score mean %.1f, max %.1f, min %.1f
  mean Tm %.1f / %.1f, mean GC %.1f / %.1f, mean product %.0f bp`,
		humanize.Comma(int64(sum.Total)),
		humanize.Comma(int64(sum.High)),
		humanize.Comma(int64(sum.Medium)),
		humanize.Comma(int64(sum.Low)),
		sum.MeanScore, sum.MaxScore, sum.MinScore,
		sum.MeanLeftTm, sum.MeanRightTm,
		sum.MeanLeftGC, sum.MeanRightGC,
		sum.MeanProductSize,
	)
	if sum.WithDimer > 0 {
		gn.Info("Dimer score mean %.1f, %d of %d pairs >= 80",
			sum.MeanDimerScore, sum.GoodDimer, sum.WithDimer)
	}

	for _, v := range ranked[:max(min(top, len(ranked)), 0)] {
		gn.Info("%d. <em>%s</em> %.1f (%s) %s / %s, %d bp",
			v.GlobalRank, v.Pair.ID(), v.Quality, v.Grade,
			v.Pair.Left.Sequence, v.Pair.Right.Sequence, v.Pair.ProductSize)
	}

	gn.Info("Results: <em>%s</em>\nElapsed time: <em>%s</em>",
		path, gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
