// Package iopresence reads Roary gene presence/absence tables into gene
// rows of the presence matrix.
package iopresence

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnprimer/pkg/presence"
)

const (
	geneColumn       = "Gene"
	annotationColumn = "Annotation"
)

// Table is a parsed presence/absence matrix.
type Table struct {
	// Columns are header names in file order, metadata columns included.
	Columns []string

	// Rows keep the file order of genes.
	Rows []presence.GeneRow
}

// Samples returns non-metadata columns.
func (t Table) Samples() []string {
	var res []string
	for _, v := range t.Columns {
		if !presence.IsMetadata(v) {
			res = append(res, v)
		}
	}
	return res
}

// Read parses gene_presence_absence.csv file.
func Read(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, ReadFileError(path, err)
	}
	defer f.Close()

	res, err := Parse(f, path)
	if err != nil {
		return Table{}, err
	}
	slog.Info("Presence table loaded",
		"path", path,
		"genes", len(res.Rows),
		"samples", len(res.Samples()),
	)
	return res, nil
}

// Parse reads a presence/absence table from r. The name is used in error
// messages. Cells of sample columns are normalized, so empty, whitespace
// and NA-like values become "". A row shorter than the header has no
// entries for the trailing samples.
func Parse(r io.Reader, name string) (Table, error) {
	var res Table

	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return res, presence.EmptyInputError()
	}
	if err != nil {
		return res, ReadFileError(name, err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	geneIdx, annotIdx := -1, -1
	for i, v := range header {
		switch v {
		case geneColumn:
			geneIdx = i
		case annotationColumn:
			annotIdx = i
		}
	}
	if geneIdx < 0 {
		return res, presence.MissingColumnError("", geneColumn)
	}
	res.Columns = header

	var line int
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return res, ReadFileError(name, err)
		}

		if geneIdx >= len(rec) || rec[geneIdx] == "" {
			slog.Warn("Skipping row without gene name", "source", name, "row", line)
			continue
		}

		row := presence.GeneRow{
			Gene: rec[geneIdx],
			Loci: make(map[string]string, len(header)),
		}
		if annotIdx >= 0 && annotIdx < len(rec) {
			row.Annotation = rec[annotIdx]
		}
		for i, col := range header {
			if i >= len(rec) {
				break
			}
			if presence.IsMetadata(col) {
				continue
			}
			row.Loci[col] = presence.NormalizeCell(rec[i])
		}
		res.Rows = append(res.Rows, row)
	}

	if len(res.Rows) == 0 {
		return res, presence.EmptyInputError()
	}
	return res, nil
}

func trimBOM(s string) string {
	if len(s) >= 3 && s[0] == 0xEF && s[1] == 0xBB && s[2] == 0xBF {
		return s[3:]
	}
	return s
}
