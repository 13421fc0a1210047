// Package iofasta reads multiple sequence alignments in FASTA format.
package iofasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/gnames/gnprimer/pkg/conserved"
)

// ReadAlignment reads an aligned FASTA file of a gene. Files with a .gz
// suffix are decompressed.
func ReadAlignment(path, gene string) (conserved.Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return conserved.Alignment{Gene: gene}, ReadFileError(path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return conserved.Alignment{Gene: gene}, ReadFileError(path, err)
		}
		defer gz.Close()
		r = gz
	}
	return ParseAlignment(r, gene)
}

// ParseAlignment reads FASTA records from r. Record id is the first word
// of the header. Sequence lines are concatenated with white space
// removed, letter case is kept.
func ParseAlignment(r io.Reader, gene string) (conserved.Alignment, error) {
	res := conserved.Alignment{Gene: gene}
	br := bufio.NewReader(r)

	var (
		id   string
		seq  strings.Builder
		line int
	)
	flush := func() {
		if id == "" {
			return
		}
		res.Rows = append(res.Rows, conserved.Row{ID: id, Seq: seq.String()})
		seq.Reset()
	}

	for {
		s, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return res, ReadFileError(gene, err)
		}
		eof := errors.Is(err, io.EOF)
		if eof && s == "" {
			break
		}
		line++
		s = strings.TrimRight(s, "\r\n")

		switch {
		case strings.HasPrefix(s, ">"):
			flush()
			fields := strings.Fields(s[1:])
			if len(fields) == 0 {
				return res, FastaFormatError(gene, line, "empty header")
			}
			id = fields[0]
		case strings.TrimSpace(s) == "":
		case id == "":
			return res, FastaFormatError(gene, line, "sequence before header")
		default:
			for _, f := range strings.Fields(s) {
				seq.WriteString(f)
			}
		}

		if eof {
			break
		}
	}
	flush()

	if len(res.Rows) == 0 {
		return res, FastaFormatError(gene, line, "no records")
	}
	return res, nil
}
