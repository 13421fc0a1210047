package conserved_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/conserved"
	"github.com/gnames/gnprimer/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aln(seqs ...string) conserved.Alignment {
	res := conserved.Alignment{Gene: "geneA"}
	for i, s := range seqs {
		res.Rows = append(res.Rows, conserved.Row{
			ID:  string(rune('a' + i)),
			Seq: s,
		})
	}
	return res
}

func TestFindIdentical(t *testing.T) {
	assert := assert.New(t)
	s := "ATGCATGCATGCATGCATGCATGCATGCATGCATGCATGC"
	f, err := conserved.New(10, 500)
	require.Nil(t, err)

	res, err := f.Find(aln(s, s, s))
	require.Nil(t, err)
	assert.Equal(1, res.Start)
	assert.Equal(40, res.End)
	assert.Equal(40, res.Length)
	assert.Equal(s, res.Consensus)
	assert.Equal("1-40", res.Position())
	assert.True(res.Found())
}

func TestFind(t *testing.T) {
	tests := []struct {
		msg        string
		min, max   int
		seqs       []string
		start, end int
	}{
		{"case insensitive", 3, 10,
			[]string{"acgtACGT", "ACGTacgt"}, 1, 8},
		{"gap breaks window", 3, 10,
			[]string{"ACG-TTTT", "ACG-TTTT"}, 5, 8},
		{"mismatch breaks window", 2, 10,
			[]string{"AAAACCGG", "AAATCCGG"}, 5, 8},
		{"leftmost wins", 3, 10,
			[]string{"AAAGCCCG", "AAATCCCT"}, 1, 3},
		{"capped by max", 2, 4,
			[]string{"ACGTACGT", "ACGTACGT"}, 1, 4},
		{"capped by max keeps leftmost", 2, 3,
			[]string{"ACGTTGCAAC", "ACGATGCAAC"}, 1, 3},
		{"N is a regular symbol", 2, 10,
			[]string{"NNAC", "NNAC"}, 1, 4},
		{"below floor", 5, 10,
			[]string{"ACGTTAAA", "ACGATAAT"}, 0, 0},
		{"all gaps", 1, 10,
			[]string{"----", "----"}, 0, 0},
	}

	for _, v := range tests {
		f, err := conserved.New(v.min, v.max)
		require.Nil(t, err, v.msg)
		res, err := f.Find(aln(v.seqs...))
		require.Nil(t, err, v.msg)
		assert.Equal(t, v.start, res.Start, v.msg)
		assert.Equal(t, v.end, res.End, v.msg)
		if v.start == 0 {
			assert.False(t, res.Found(), v.msg)
			assert.Equal(t, "none", res.Position(), v.msg)
		}
	}
}

func TestFindErrors(t *testing.T) {
	assert := assert.New(t)
	f := conserved.NewDefault()

	_, err := f.Find(aln("ACGT"))
	require.NotNil(t, err)
	gnErr, ok := err.(*gn.Error)
	assert.True(ok)
	assert.Equal(errcode.InsufficientSequencesError, gnErr.Code)

	_, err = f.Find(aln())
	require.NotNil(t, err)

	_, err = f.Find(aln("ACGT", "ACGTA"))
	require.NotNil(t, err)
	gnErr, ok = err.(*gn.Error)
	assert.True(ok)
	assert.Equal(errcode.AlignmentShapeError, gnErr.Code)

	for _, v := range [][2]int{{0, 10}, {10, 5}, {-1, -1}} {
		_, err = conserved.New(v[0], v[1])
		require.NotNil(t, err)
		gnErr, ok = err.(*gn.Error)
		assert.True(ok)
		assert.Equal(errcode.ConfigurationError, gnErr.Code)
	}
}

// naive tries every window length from the longest down and every start
// from the left.
func naive(rows []string, minLen, maxLen int) (int, int) {
	width := len(rows[0])
	for w := min(width, maxLen); w >= minLen && w > 0; w-- {
		for s := 0; s+w <= width; s++ {
			sub := strings.ToUpper(rows[0][s : s+w])
			if strings.Contains(sub, "-") {
				continue
			}
			ok := true
			for _, r := range rows[1:] {
				if strings.ToUpper(r[s:s+w]) != sub {
					ok = false
					break
				}
			}
			if ok {
				return s + 1, w
			}
		}
	}
	return 0, 0
}

func TestFindMatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewPCG(2024, 11))
	alphabet := "ACGTacgt-N"

	for range 300 {
		width := 1 + rnd.IntN(80)
		base := make([]byte, width)
		for i := range base {
			base[i] = alphabet[rnd.IntN(len(alphabet))]
		}
		nrows := 2 + rnd.IntN(4)
		rows := make([]string, nrows)
		for i := range rows {
			r := make([]byte, width)
			copy(r, base)
			for range rnd.IntN(4) {
				r[rnd.IntN(width)] = alphabet[rnd.IntN(len(alphabet))]
			}
			rows[i] = string(r)
		}
		minLen := 1 + rnd.IntN(10)
		maxLen := minLen + rnd.IntN(40)

		f, err := conserved.New(minLen, maxLen)
		require.Nil(t, err)
		res, err := f.Find(aln(rows...))
		require.Nil(t, err)

		start, length := naive(rows, minLen, maxLen)
		assert.Equal(t, start, res.Start, rows)
		assert.Equal(t, length, res.Length, rows)
	}
}

func TestFindDeterministic(t *testing.T) {
	f, err := conserved.New(2, 6)
	require.Nil(t, err)
	a := aln("ACGTTTGCAAACGT", "ACGATTGCAAACGT", "ACGTTTGCATACGT")

	first, err := f.Find(a)
	require.Nil(t, err)
	for range 20 {
		res, err := f.Find(a)
		require.Nil(t, err)
		assert.Equal(t, first, res)
	}
}

func TestRegionClass(t *testing.T) {
	tests := []struct {
		length int
		want   string
	}{
		{0, "none"}, {50, "short"}, {80, "acceptable"},
		{100, "standard"}, {199, "standard"}, {200, "long"}, {500, "long"},
	}
	for _, v := range tests {
		r := conserved.Region{Start: 1, End: v.length, Length: v.length}
		assert.Equal(t, v.want, r.Class(), v.length)
	}
}
