// Package conserved finds the longest gap-free window that is identical in
// every row of a multiple sequence alignment.
package conserved

import "fmt"

const (
	// DefaultMinLength is the shortest window worth reporting.
	DefaultMinLength = 50

	// DefaultMaxLength is the longest window that is searched for.
	DefaultMaxLength = 500

	// Gap is the alignment gap character.
	Gap = '-'
)

// Row is one aligned sequence.
type Row struct {
	ID  string
	Seq string
}

// Alignment is a multiple sequence alignment of one gene.
type Alignment struct {
	Gene string
	Rows []Row
}

// Width returns the length of the first row, or 0 for an empty alignment.
func (a Alignment) Width() int {
	if len(a.Rows) == 0 {
		return 0
	}
	return len(a.Rows[0].Seq)
}

// Region is a conserved window. Start and End are 1-based and inclusive.
// A Region with zero Length means no window qualified.
type Region struct {
	Gene      string
	Start     int
	End       int
	Length    int
	Consensus string
}

// Found is true when a conserved window exists.
func (r Region) Found() bool {
	return r.Length > 0
}

// Position returns the window as "start-end" or "none".
func (r Region) Position() string {
	if !r.Found() {
		return "none"
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Class names the length class of the region.
func (r Region) Class() string {
	switch {
	case !r.Found():
		return "none"
	case r.Length >= 200:
		return "long"
	case r.Length >= 100:
		return "standard"
	case r.Length >= 80:
		return "acceptable"
	default:
		return "short"
	}
}

// Finder searches alignments for conserved windows of length between
// MinLength and MaxLength.
type Finder struct {
	MinLength int
	MaxLength int
}

// New creates a Finder. It returns an error if the bounds are not positive
// or MinLength exceeds MaxLength.
func New(minLen, maxLen int) (*Finder, error) {
	if minLen < 1 || maxLen < minLen {
		return nil, WindowBoundsError(minLen, maxLen)
	}
	return &Finder{MinLength: minLen, MaxLength: maxLen}, nil
}

// NewDefault creates a Finder with default bounds.
func NewDefault() *Finder {
	return &Finder{MinLength: DefaultMinLength, MaxLength: DefaultMaxLength}
}

// Find returns the longest conserved window of the alignment. If several
// windows share that length, the leftmost one wins. When no window reaches
// MinLength, it returns a Region with zero Length and no error.
func (f *Finder) Find(a Alignment) (Region, error) {
	res := Region{Gene: a.Gene}
	if len(a.Rows) < 2 {
		return res, InsufficientSequencesError(a.Gene, len(a.Rows))
	}
	width := a.Width()
	for _, r := range a.Rows[1:] {
		if len(r.Seq) != width {
			return res, AlignmentShapeError(a.Gene, r.ID, width, len(r.Seq))
		}
	}

	rows := make([]string, len(a.Rows))
	for i := range a.Rows {
		rows[i] = upper(a.Rows[i].Seq)
	}

	good := conservedColumns(rows, width)
	maxLen := min(width, f.MaxLength)

	// A window is conserved exactly when all of its columns are, so the
	// longest window is the longest run of good columns truncated to
	// maxLen. Truncation keeps the run start, which is the leftmost
	// candidate of that run.
	bestStart, bestLen := -1, 0
	for i := 0; i < width; {
		if !good[i] {
			i++
			continue
		}
		j := i
		for j < width && good[j] {
			j++
		}
		l := min(j-i, maxLen)
		if l > bestLen {
			bestStart, bestLen = i, l
		}
		i = j
	}

	if bestLen < f.MinLength || bestLen == 0 {
		return res, nil
	}

	res.Start = bestStart + 1
	res.End = bestStart + bestLen
	res.Length = bestLen
	res.Consensus = rows[0][bestStart : bestStart+bestLen]
	return res, nil
}

// conservedColumns marks columns where every row has the same non-gap
// character.
func conservedColumns(rows []string, width int) []bool {
	res := make([]bool, width)
	for i := range width {
		c := rows[0][i]
		if c == Gap {
			continue
		}
		ok := true
		for _, r := range rows[1:] {
			if r[i] != c {
				ok = false
				break
			}
		}
		res[i] = ok
	}
	return res
}

// upper converts ASCII letters to upper case and keeps byte offsets intact.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
