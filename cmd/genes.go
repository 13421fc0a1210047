package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/gnames/gnprimer/internal/iopresence"
	"github.com/gnames/gnprimer/pkg/config"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnprimer/pkg/store"
	"github.com/spf13/cobra"
)

// getGenesCmd returns the genes command.
func getGenesCmd() *cobra.Command {
	var (
		input       string
		genus       string
		prefix      string
		allSpecific bool
	)

	genesCmd := &cobra.Command{
		Use:   "genes",
		Short: "Find genes specific to target genomes in a Roary table",
		Long: `Finds genes present in every target genome and absent from every
outgroup genome of a Roary gene_presence_absence.csv table.

Target genomes are the sample columns that start with a prefix. The prefix
is derived from the genus name (Escherichia -> Esc_) or given explicitly.
Without outgroup samples every gene present in all targets is specific.

When enough specific genes are annotated as hypothetical proteins, only
they are selected (see selection settings in config.yaml). Use
--all-specific to select every specific gene.

Results:
  specific_genes.txt            selected gene names, one per line
  specific_genes_detailed.csv   selected genes with annotations

Examples:
  gnprimer genes -i gene_presence_absence.csv -g Escherichia
  gnprimer genes -i roary.csv -p Tar_ -o results --all-specific`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var genesOpts []config.Option
			if cmd.Flags().Changed("genus") {
				genesOpts = append(genesOpts, config.OptSelectionGenus(genus))
			}
			if cmd.Flags().Changed("prefix") {
				genesOpts = append(genesOpts, config.OptSelectionTargetPrefix(prefix))
			}
			genesOpts = append(genesOpts, config.OptSelectionAllSpecific(allSpecific))
			cfg.Update(genesOpts)

			err := runGenes(input)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	inputFlag(genesCmd, &input, "Roary gene_presence_absence.csv file")
	genesCmd.Flags().StringVarP(
		&genus, "genus", "g", "",
		"target genus, e.g. 'Escherichia' or 'Escherichia coli'",
	)
	genesCmd.Flags().StringVarP(
		&prefix, "prefix", "p", "",
		"sample prefix of target genomes (overrides --genus)",
	)
	genesCmd.Flags().BoolVarP(
		&allSpecific, "all-specific", "a", false,
		"select all specific genes, not only hypothetical proteins",
	)

	return genesCmd
}

func runGenes(input string) error {
	ctx := context.Background()
	start := time.Now()

	prefix := cfg.Selection.TargetPrefix
	if prefix == "" {
		prefix = presence.TargetPrefix(cfg.Selection.Genus)
	}

	tbl, err := iopresence.Read(input)
	if err != nil {
		return err
	}

	targets, outgroups, err := presence.ClassifySamples(tbl.Columns, prefix)
	if err != nil {
		return err
	}
	gn.Info("Target prefix <em>%s</em>: %d target, %d outgroup samples",
		prefix, len(targets), len(outgroups))
	if len(outgroups) == 0 {
		gn.Warn("No outgroup samples, specificity is not tested")
	}

	res, err := presence.FilterSpecificGenes(
		tbl.Rows, targets, outgroups, cfg.JobsNumber,
	)
	for _, v := range res.Issues {
		slog.Warn("Gene row skipped", "error", v)
	}
	if res.Failed > 0 {
		gn.Warn("Skipped <em>%d</em> malformed gene rows", res.Failed)
	}
	if err != nil {
		return err
	}

	policy := presence.Policy{
		PreferHypothetical: cfg.Selection.PreferHypothetical &&
			!cfg.Selection.AllSpecific,
		MinHypothetical: cfg.Selection.MinHypothetical,
		Marker:          cfg.Selection.HypotheticalMarker,
	}
	sel := presence.SelectGenes(res.Genes, policy)
	slog.Info("Genes selected",
		"specific", len(res.Genes),
		"marked", sel.Marked,
		"selected", len(sel.Genes),
		"only_marked", sel.OnlyMarked,
	)

	paths, err := iooutput.WriteSpecificGenes(cfg.Output.Dir, sel.Genes)
	if err != nil {
		return err
	}

	run := store.NewRun("genes", input)
	run.Genus = cfg.Selection.Genus
	run.TargetPrefix = prefix
	err = withStore(ctx, cfg, run, func(st store.Store) error {
		return st.SaveGenes(ctx, run.ID, sel.Genes)
	})
	if err != nil {
		return err
	}

	kind := "all specific genes"
	if sel.OnlyMarked {
		kind = "hypothetical proteins only"
	}
	gn.Info(`Specific genes: <em>%s</em> of %s, selected <em>%s</em> (%s)
Results: <em>%s</em>, <em>%s</em>
Elapsed time: <em>%s</em>`,
		humanize.Comma(int64(len(res.Genes))),
		humanize.Comma(int64(res.Total)),
		humanize.Comma(int64(len(sel.Genes))),
		kind,
		paths[0], paths[1],
		gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
