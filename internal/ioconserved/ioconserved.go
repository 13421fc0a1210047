// Package ioconserved finds conserved regions in a directory of gene
// alignments.
package ioconserved

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnprimer/internal/iofasta"
	"github.com/gnames/gnprimer/pkg/conserved"
	"golang.org/x/sync/errgroup"
)

// alignment file suffixes, a gene name is the file name without them
var suffixes = []string{
	"_aln.fasta", "_aln.fa", "_aln.fas",
	"_aln.fasta.gz", "_aln.fa.gz", "_aln.fas.gz",
}

// File is an alignment of one gene.
type File struct {
	Gene string
	Path string
}

// Report is the outcome of a directory scan.
type Report struct {
	// Regions in file name order. Genes without a conserved window have
	// a zero-length region.
	Regions []conserved.Region

	// Found is the number of regions with non-zero length.
	Found int

	// Failed is the number of alignments that could not be read or
	// analysed.
	Failed int

	// Issues keep errors of failed alignments in file name order.
	Issues []error
}

// Scanner searches alignments for conserved windows concurrently.
type Scanner struct {
	finder   *conserved.Finder
	jobs     int
	progress bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// OptProgress enables a progress bar on stderr.
func OptProgress(b bool) Option {
	return func(s *Scanner) {
		s.progress = b
	}
}

// New creates a Scanner that uses up to jobs workers.
func New(f *conserved.Finder, jobs int, opts ...Option) *Scanner {
	if jobs < 1 {
		jobs = 1
	}
	res := &Scanner{finder: f, jobs: jobs}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// AlignmentFiles lists alignment files of dir sorted by name.
func AlignmentFiles(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ReadDirError(dir, err)
	}

	var res []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if gene, ok := geneName(e.Name()); ok {
			res = append(res, File{Gene: gene, Path: filepath.Join(dir, e.Name())})
		}
	}
	return res, nil
}

func geneName(file string) (string, bool) {
	for _, sfx := range suffixes {
		if gene, ok := strings.CutSuffix(file, sfx); ok && gene != "" {
			return gene, true
		}
	}
	return "", false
}

type slot struct {
	region conserved.Region
	err    error
}

// Scan reads every alignment of dir and finds its conserved region. An
// alignment that fails does not stop the others. It returns
// NoConservedRegionError together with the Report when no alignment has a
// conserved window.
func (s *Scanner) Scan(ctx context.Context, dir string) (Report, error) {
	var res Report
	files, err := AlignmentFiles(dir)
	if err != nil {
		return res, err
	}
	if len(files) == 0 {
		return res, NoAlignmentsError(dir)
	}

	slog.Info("Searching conserved regions",
		"dir", dir,
		"alignments", len(files),
		"min_length", s.finder.MinLength,
		"max_length", s.finder.MaxLength,
	)

	var bar *pb.ProgressBar
	if s.progress {
		bar = newProgressBar(len(files), "Alignments: ")
		defer bar.Finish()
	}

	slots := make([]slot, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = s.scanFile(files[i])
			if bar != nil {
				bar.Increment()
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return res, err
	}

	for _, v := range slots {
		if v.err != nil {
			res.Failed++
			res.Issues = append(res.Issues, v.err)
			continue
		}
		if v.region.Found() {
			res.Found++
		}
		res.Regions = append(res.Regions, v.region)
	}

	slog.Info("Conserved region search complete",
		"alignments", len(files),
		"found", res.Found,
		"failed", res.Failed,
	)

	if res.Found == 0 {
		return res, conserved.NoConservedRegionError(len(files), s.finder.MinLength)
	}
	return res, nil
}

func (s *Scanner) scanFile(f File) slot {
	a, err := iofasta.ReadAlignment(f.Path, f.Gene)
	if err != nil {
		slog.Error("Cannot read alignment", "gene", f.Gene, "error", err)
		return slot{err: err}
	}

	r, err := s.finder.Find(a)
	if err != nil {
		slog.Error("Cannot analyse alignment", "gene", f.Gene, "error", err)
		return slot{err: err}
	}

	slog.Info("Conserved region",
		"gene", r.Gene,
		"position", r.Position(),
		"length", r.Length,
		"class", r.Class(),
	)
	return slot{region: r}
}
