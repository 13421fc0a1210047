package primer3

import (
	"strconv"
	"strings"
)

// Settings controls which templates are sent to Primer3 and how primers
// are designed for them.
type Settings struct {
	// MinRegionLength is the shortest conserved region used as a template.
	MinRegionLength int `mapstructure:"min_region_length" yaml:"min_region_length"`

	// MaxRegionLength is the longest conserved region used as a template.
	MaxRegionLength int `mapstructure:"max_region_length" yaml:"max_region_length"`

	OptSize       int `mapstructure:"opt_size"        yaml:"opt_size"`
	MinSize       int `mapstructure:"min_size"        yaml:"min_size"`
	MaxSize       int `mapstructure:"max_size"        yaml:"max_size"`
	MaxNsAccepted int `mapstructure:"max_ns_accepted" yaml:"max_ns_accepted"`

	// ProductSizeRange uses Primer3 syntax, e.g. "100-300 80-200".
	ProductSizeRange string `mapstructure:"product_size_range" yaml:"product_size_range"`
	OptProductSize   int    `mapstructure:"opt_product_size"   yaml:"opt_product_size"`

	OptTm float64 `mapstructure:"opt_tm" yaml:"opt_tm"`
	MinTm float64 `mapstructure:"min_tm" yaml:"min_tm"`
	MaxTm float64 `mapstructure:"max_tm" yaml:"max_tm"`

	MinGC float64 `mapstructure:"min_gc" yaml:"min_gc"`
	MaxGC float64 `mapstructure:"max_gc" yaml:"max_gc"`

	MaxPolyX int `mapstructure:"max_poly_x" yaml:"max_poly_x"`
}

// DefaultSettings returns design settings tuned for short diagnostic
// amplicons.
func DefaultSettings() Settings {
	return Settings{
		MinRegionLength:  80,
		MaxRegionLength:  400,
		OptSize:          20,
		MinSize:          18,
		MaxSize:          25,
		MaxNsAccepted:    0,
		ProductSizeRange: "100-300 80-200 200-400",
		OptProductSize:   150,
		OptTm:            60,
		MinTm:            55,
		MaxTm:            65,
		MinGC:            30,
		MaxGC:            70,
		MaxPolyX:         4,
	}
}

// Valid reports whether the settings are internally consistent.
func (s Settings) Valid() bool {
	switch {
	case s.MinRegionLength <= 0 || s.MaxRegionLength < s.MinRegionLength:
		return false
	case s.MinSize <= 0 || s.MaxSize < s.MinSize:
		return false
	case s.OptSize < s.MinSize || s.OptSize > s.MaxSize:
		return false
	case s.MaxTm < s.MinTm || s.MaxGC < s.MinGC:
		return false
	case s.MaxNsAccepted < 0 || s.MaxPolyX < 0:
		return false
	case strings.TrimSpace(s.ProductSizeRange) == "":
		return false
	}
	return true
}

// Usable reports whether a region of the given length is a template.
func (s Settings) Usable(length int) bool {
	return length >= s.MinRegionLength && length <= s.MaxRegionLength
}

// Template is a sequence submitted to Primer3.
type Template struct {
	ID       string
	Sequence string
}

// BuildInput renders Boulder-IO input records for every usable template.
// It returns the text and the number of records written.
func BuildInput(templates []Template, s Settings) (string, int) {
	var sb strings.Builder
	var count int
	for _, t := range templates {
		if t.Sequence == "" || !s.Usable(len(t.Sequence)) {
			continue
		}
		count++
		writeTag(&sb, "SEQUENCE_ID", t.ID)
		writeTag(&sb, "SEQUENCE_TEMPLATE", t.Sequence)
		writeTag(&sb, "PRIMER_TASK", "generic")
		writeTag(&sb, "PRIMER_PICK_LEFT_PRIMER", "1")
		writeTag(&sb, "PRIMER_PICK_INTERNAL_OLIGO", "0")
		writeTag(&sb, "PRIMER_PICK_RIGHT_PRIMER", "1")
		writeTag(&sb, "PRIMER_OPT_SIZE", strconv.Itoa(s.OptSize))
		writeTag(&sb, "PRIMER_MIN_SIZE", strconv.Itoa(s.MinSize))
		writeTag(&sb, "PRIMER_MAX_SIZE", strconv.Itoa(s.MaxSize))
		writeTag(&sb, "PRIMER_MAX_NS_ACCEPTED", strconv.Itoa(s.MaxNsAccepted))
		writeTag(&sb, "PRIMER_PRODUCT_SIZE_RANGE", s.ProductSizeRange)
		writeTag(&sb, "PRIMER_OPT_PRODUCT_SIZE", strconv.Itoa(s.OptProductSize))
		writeTag(&sb, "PRIMER_OPT_TM", formatFloat(s.OptTm))
		writeTag(&sb, "PRIMER_MIN_TM", formatFloat(s.MinTm))
		writeTag(&sb, "PRIMER_MAX_TM", formatFloat(s.MaxTm))
		writeTag(&sb, "PRIMER_MIN_GC", formatFloat(s.MinGC))
		writeTag(&sb, "PRIMER_MAX_GC", formatFloat(s.MaxGC))
		writeTag(&sb, "PRIMER_MAX_POLY_X", strconv.Itoa(s.MaxPolyX))
		sb.WriteString("=\n")
	}
	return sb.String(), count
}

func writeTag(sb *strings.Builder, key, val string) {
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(val)
	sb.WriteByte('\n')
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
