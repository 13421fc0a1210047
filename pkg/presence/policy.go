package presence

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnparser"
)

// Policy decides which specific genes go to primer design.
type Policy struct {
	// PreferHypothetical restricts the selection to genes annotated with
	// Marker when there are at least MinHypothetical of them.
	PreferHypothetical bool

	// MinHypothetical is the smallest number of marked genes that is
	// used on its own.
	MinHypothetical int

	// Marker is the annotation substring of uncharacterized genes.
	Marker string
}

// DefaultPolicy prefers hypothetical proteins when there are at least five.
func DefaultPolicy() Policy {
	return Policy{
		PreferHypothetical: true,
		MinHypothetical:    5,
		Marker:             "hypothetical protein",
	}
}

// Selection is the outcome of applying a Policy.
type Selection struct {
	Genes []SpecificGene

	// Marked is the number of specific genes that carry the marker.
	Marked int

	// OnlyMarked is true when Genes holds marked genes only.
	OnlyMarked bool
}

// SelectGenes applies the policy to specific genes, keeping their order.
// Without enough marked genes it falls back to all of them.
func SelectGenes(specific []SpecificGene, p Policy) Selection {
	var marked []SpecificGene
	for _, g := range specific {
		if g.HasMarker(p.Marker) {
			marked = append(marked, g)
		}
	}

	res := Selection{Genes: specific, Marked: len(marked)}
	if p.PreferHypothetical && len(marked) > 0 &&
		len(marked) >= p.MinHypothetical {
		res.Genes = marked
		res.OnlyMarked = true
	}
	return res
}

// TargetPrefix derives the sample column prefix of a genus from a genus or
// species name: the first three letters of the genus, capitalized, and an
// underscore. For "Escherichia coli" it returns "Esc_". It returns an empty
// string when the name is empty.
func TargetPrefix(name string) string {
	genus := genusOf(name)
	if genus == "" {
		return ""
	}

	if utf8.RuneCountInString(genus) > 3 {
		genus = string([]rune(genus)[:3])
	}
	r, size := utf8.DecodeRuneInString(genus)
	return string(unicode.ToUpper(r)) + strings.ToLower(genus[size:]) + "_"
}

func genusOf(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	prs := gnparser.New(gnparser.NewConfig())
	p := prs.ParseName(name)
	if p.Parsed && p.Canonical != nil && p.Canonical.Simple != "" {
		return strings.Fields(p.Canonical.Simple)[0]
	}
	return strings.Fields(name)[0]
}
