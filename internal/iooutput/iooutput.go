// Package iooutput writes result tables of gnprimer commands and reads
// them back where one command consumes the output of another.
package iooutput

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/gnames/gnsys"
)

// Names of output files.
const (
	SpecificGenesFile   = "specific_genes.txt"
	SpecificDetailsFile = "specific_genes_detailed.csv"
	RegionsFile         = "conserved_regions.txt"
	Primer3InputFile    = "primer3_input.txt"
	ParsedPrimersFile   = "parsed_primers.csv"
	RankedPrimersCSV    = "ranked_primers.csv"
	RankedPrimersJSON   = "ranked_primers.json"
)

// WriteSpecificGenes saves gene names, one per line, and a CSV table of
// genes with their annotations. It returns paths of both files.
func WriteSpecificGenes(
	dir string,
	genes []presence.SpecificGene,
) ([]string, error) {
	var names, csv strings.Builder
	csv.WriteString(csvLine([]string{"Gene", "Annotation"}))
	for _, g := range genes {
		names.WriteString(g.Gene)
		names.WriteByte('\n')
		csv.WriteString(csvLine([]string{g.Gene, g.Annotation}))
	}

	txtPath, err := writeFile(dir, SpecificGenesFile, names.String())
	if err != nil {
		return nil, err
	}
	csvPath, err := writeFile(dir, SpecificDetailsFile, csv.String())
	if err != nil {
		return nil, err
	}
	return []string{txtPath, csvPath}, nil
}

// WritePrimer3Input saves Boulder-IO input records.
func WritePrimer3Input(dir, input string) (string, error) {
	return writeFile(dir, Primer3InputFile, input)
}

func csvLine(fields []string) string {
	return strings.TrimRight(gnfmt.ToCSV(fields, ','), "\r\n") + "\n"
}

func writeFile(dir, name, data string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if dir != "." {
		if err := gnsys.MakeDir(dir); err != nil {
			return "", CreateDirError(dir, err)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return "", WriteFileError(path, err)
	}
	return path, nil
}
