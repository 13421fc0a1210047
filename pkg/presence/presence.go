// Package presence finds genes that separate a target group of genomes from
// an outgroup using a pangenome presence/absence matrix.
//
// A gene is specific when every target sample carries it and no outgroup
// sample does. With an empty outgroup the second condition holds
// vacuously. Cells are normalized at the read boundary, so the empty string
// is the only absent value this package sees.
package presence

import (
	"slices"
	"strings"
)

// MetadataColumns are the non-sample columns of a Roary
// gene_presence_absence table.
var MetadataColumns = []string{
	"Gene",
	"Non-unique Gene name",
	"Annotation",
	"No. isolates",
	"No. sequences",
	"Avg sequences per isolate",
	"Genome Fragment",
	"Order within Fragment",
	"Accessory Fragment",
	"Accessory Order with Fragment",
	"QC",
	"Min group size nuc",
	"Max group size nuc",
	"Avg group size nuc",
}

// IsMetadata is true for columns that do not describe a genome sample.
func IsMetadata(column string) bool {
	return slices.Contains(MetadataColumns, column)
}

// Group of a genome sample.
type Group int

const (
	Outgroup Group = iota
	Target
)

func (g Group) String() string {
	if g == Target {
		return "target"
	}
	return "outgroup"
}

// Sample is a genome sample column of the matrix.
type Sample struct {
	ID    string
	Group Group
}

// Samples combines target and outgroup ids, targets first.
func Samples(targets, outgroups []string) []Sample {
	res := make([]Sample, 0, len(targets)+len(outgroups))
	for _, v := range targets {
		res = append(res, Sample{ID: v, Group: Target})
	}
	for _, v := range outgroups {
		res = append(res, Sample{ID: v, Group: Outgroup})
	}
	return res
}

// GeneRow is one gene of the matrix. Loci maps sample ids to locus tags,
// an empty locus means the gene is absent from the sample.
type GeneRow struct {
	Gene       string
	Annotation string
	Loci       map[string]string
}

// NormalizeCell trims a matrix cell and converts empty and NA-like
// values to "".
func NormalizeCell(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "NA", "NaN", "nan", "N/A", "<NA>":
		return ""
	}
	return s
}

// SpecificGene is a gene present in all targets and absent from all
// outgroups.
type SpecificGene struct {
	Gene       string
	Annotation string
}

// HasMarker reports whether the annotation contains marker, ignoring case.
func (g SpecificGene) HasMarker(marker string) bool {
	if marker == "" {
		return false
	}
	return strings.Contains(
		strings.ToLower(g.Annotation),
		strings.ToLower(marker),
	)
}

// ClassifySamples splits non-metadata columns into targets, the columns
// that start with prefix, and outgroups. Column order is preserved.
func ClassifySamples(
	columns []string,
	prefix string,
) (targets, outgroups []string, err error) {
	if prefix == "" {
		return nil, nil, EmptyPrefixError()
	}
	for _, col := range columns {
		if IsMetadata(col) {
			continue
		}
		if strings.HasPrefix(col, prefix) {
			targets = append(targets, col)
		} else {
			outgroups = append(outgroups, col)
		}
	}
	if len(targets) == 0 {
		return nil, nil, NoTargetSamplesError(prefix, len(outgroups))
	}
	return targets, outgroups, nil
}
