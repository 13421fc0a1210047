package presence

import (
	"golang.org/x/sync/errgroup"
)

// Result of filtering a presence/absence matrix.
type Result struct {
	// Genes are specific genes in the order of the input rows.
	Genes []SpecificGene

	// Total is the number of rows examined.
	Total int

	// Failed is the number of rows that could not be classified.
	Failed int

	// Issues keep errors of failed rows in input order.
	Issues []error
}

type verdict struct {
	specific bool
	err      error
}

// FilterSpecificGenes returns genes present in every target sample and
// absent from every outgroup sample. Rows are checked by up to jobs workers.
// A row that lacks a sample column counts as failed and does not stop the
// others. It returns EmptyInputError when there are no rows and
// NoSpecificGeneError when no gene qualifies. The Result is filled in
// both cases.
func FilterSpecificGenes(
	rows []GeneRow,
	targets, outgroups []string,
	jobs int,
) (Result, error) {
	res := Result{Total: len(rows)}
	if len(rows) == 0 {
		return res, EmptyInputError()
	}
	if len(targets) == 0 {
		return res, NoTargetSamplesError("", len(outgroups))
	}
	if jobs < 1 {
		jobs = 1
	}

	verdicts := make([]verdict, len(rows))
	chunk := (len(rows) + jobs - 1) / jobs

	var g errgroup.Group
	g.SetLimit(jobs)
	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))
		g.Go(func() error {
			for i := start; i < end; i++ {
				verdicts[i] = check(rows[i], targets, outgroups)
			}
			return nil
		})
	}
	_ = g.Wait()

	for i, v := range verdicts {
		if v.err != nil {
			res.Failed++
			res.Issues = append(res.Issues, v.err)
			continue
		}
		if v.specific {
			res.Genes = append(res.Genes, SpecificGene{
				Gene:       rows[i].Gene,
				Annotation: rows[i].Annotation,
			})
		}
	}

	if len(res.Genes) == 0 {
		return res, NoSpecificGeneError(res.Total, len(targets), len(outgroups))
	}
	return res, nil
}

func check(row GeneRow, targets, outgroups []string) verdict {
	for _, ss := range [][]string{targets, outgroups} {
		for _, s := range ss {
			if _, ok := row.Loci[s]; !ok {
				return verdict{err: MissingColumnError(row.Gene, s)}
			}
		}
	}

	for _, s := range targets {
		if row.Loci[s] == "" {
			return verdict{}
		}
	}
	for _, s := range outgroups {
		if row.Loci[s] != "" {
			return verdict{}
		}
	}
	return verdict{specific: true}
}
