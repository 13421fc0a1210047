package iooutput

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprimer/pkg/primer3"
	"github.com/gnames/gnprimer/pkg/quality"
)

// PrimerRecord is a flat view of a primer pair for tables and JSON.
type PrimerRecord struct {
	SequenceID        string  `json:"sequenceId"`
	PairIndex         int     `json:"pairIndex"`
	LeftSequence      string  `json:"leftSequence"`
	RightSequence     string  `json:"rightSequence"`
	LeftStart         int     `json:"leftStart"`
	RightStart        int     `json:"rightStart"`
	LeftLength        int     `json:"leftLength"`
	RightLength       int     `json:"rightLength"`
	LeftTm            float64 `json:"leftTm"`
	RightTm           float64 `json:"rightTm"`
	LeftGC            float64 `json:"leftGc"`
	RightGC           float64 `json:"rightGc"`
	LeftSelfAny       float64 `json:"leftSelfAny"`
	RightSelfAny      float64 `json:"rightSelfAny"`
	LeftSelfEnd       float64 `json:"leftSelfEnd"`
	RightSelfEnd      float64 `json:"rightSelfEnd"`
	LeftHairpin       float64 `json:"leftHairpin"`
	RightHairpin      float64 `json:"rightHairpin"`
	LeftEndStability  float64 `json:"leftEndStability"`
	RightEndStability float64 `json:"rightEndStability"`
	PairComplAny      float64 `json:"pairComplAny"`
	PairComplEnd      float64 `json:"pairComplEnd"`
	ProductSize       int     `json:"productSize"`
	ProductTm         float64 `json:"productTm"`
	TmDiff            float64 `json:"tmDiff"`
	GCDiff            float64 `json:"gcDiff"`
	LengthDiff        int     `json:"lengthDiff"`
}

// RankedRecord is a primer pair with its score and ranks.
type RankedRecord struct {
	PrimerRecord
	QualityScore float64 `json:"qualityScore"`
	Grade        string  `json:"grade"`
	RankInGroup  int     `json:"rankInGroup"`
	GlobalRank   int     `json:"globalRank"`
	DimerScore   float64 `json:"dimerScore"`
}

var pairHeader = []string{
	"Sequence_ID", "Pair_Index",
	"Left_Sequence", "Right_Sequence",
	"Left_Start", "Right_Start",
	"Left_Length", "Right_Length",
	"Left_Tm", "Right_Tm",
	"Left_GC", "Right_GC",
	"Left_Self_Any", "Right_Self_Any",
	"Left_Self_End", "Right_Self_End",
	"Left_Hairpin", "Right_Hairpin",
	"Left_End_Stability", "Right_End_Stability",
	"Pair_Compl_Any", "Pair_Compl_End",
	"Product_Size", "Product_Tm",
	"Tm_Diff", "GC_Diff", "Length_Diff",
}

var rankHeader = []string{
	"Quality_Score", "Grade", "Rank_In_Group", "Global_Rank", "Dimer_Score",
}

// NewPrimerRecord flattens a primer pair.
func NewPrimerRecord(p primer3.PrimerPair) PrimerRecord {
	return PrimerRecord{
		SequenceID:        p.SequenceID,
		PairIndex:         p.PairIndex,
		LeftSequence:      p.Left.Sequence,
		RightSequence:     p.Right.Sequence,
		LeftStart:         p.Left.Start,
		RightStart:        p.Right.Start,
		LeftLength:        p.Left.Length,
		RightLength:       p.Right.Length,
		LeftTm:            p.Left.Tm,
		RightTm:           p.Right.Tm,
		LeftGC:            p.Left.GC,
		RightGC:           p.Right.GC,
		LeftSelfAny:       p.Left.SelfAny,
		RightSelfAny:      p.Right.SelfAny,
		LeftSelfEnd:       p.Left.SelfEnd,
		RightSelfEnd:      p.Right.SelfEnd,
		LeftHairpin:       p.Left.Hairpin,
		RightHairpin:      p.Right.Hairpin,
		LeftEndStability:  p.Left.EndStability,
		RightEndStability: p.Right.EndStability,
		PairComplAny:      p.PairComplAny,
		PairComplEnd:      p.PairComplEnd,
		ProductSize:       p.ProductSize,
		ProductTm:         p.ProductTm,
		TmDiff:            p.TmDiff(),
		GCDiff:            p.GCDiff(),
		LengthDiff:        p.LengthDiff(),
	}
}

// NewRankedRecord flattens a ranked primer pair.
func NewRankedRecord(r quality.Ranked) RankedRecord {
	return RankedRecord{
		PrimerRecord: NewPrimerRecord(r.Pair),
		QualityScore: round2(r.Quality),
		Grade:        r.Grade,
		RankInGroup:  r.RankInGroup,
		GlobalRank:   r.GlobalRank,
		DimerScore:   round2(r.DimerScore),
	}
}

func (r PrimerRecord) pairFields() []string {
	return []string{
		r.SequenceID, strconv.Itoa(r.PairIndex),
		r.LeftSequence, r.RightSequence,
		strconv.Itoa(r.LeftStart), strconv.Itoa(r.RightStart),
		strconv.Itoa(r.LeftLength), strconv.Itoa(r.RightLength),
		ff(r.LeftTm), ff(r.RightTm),
		ff(r.LeftGC), ff(r.RightGC),
		ff(r.LeftSelfAny), ff(r.RightSelfAny),
		ff(r.LeftSelfEnd), ff(r.RightSelfEnd),
		ff(r.LeftHairpin), ff(r.RightHairpin),
		ff(r.LeftEndStability), ff(r.RightEndStability),
		ff(r.PairComplAny), ff(r.PairComplEnd),
		strconv.Itoa(r.ProductSize), ff(r.ProductTm),
		ff(r.TmDiff), ff(r.GCDiff), strconv.Itoa(r.LengthDiff),
	}
}

func (r RankedRecord) rankFields() []string {
	return []string{
		ff(r.QualityScore), r.Grade,
		strconv.Itoa(r.RankInGroup), strconv.Itoa(r.GlobalRank),
		ff(r.DimerScore),
	}
}

// WriteParsedPrimers saves parsed primer pairs as CSV.
func WriteParsedPrimers(dir string, pairs []primer3.PrimerPair) (string, error) {
	var sb strings.Builder
	sb.WriteString(csvLine(pairHeader))
	for _, p := range pairs {
		sb.WriteString(csvLine(NewPrimerRecord(p).pairFields()))
	}
	return writeFile(dir, ParsedPrimersFile, sb.String())
}

// WriteRankedPrimers saves ranked primer pairs in 'csv' or 'json' format,
// keeping the order of ranked, best first.
func WriteRankedPrimers(
	dir string,
	ranked []quality.Ranked,
	format string,
) (string, error) {
	recs := make([]RankedRecord, len(ranked))
	for i := range ranked {
		recs[i] = NewRankedRecord(ranked[i])
	}

	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		data, err := enc.Encode(recs)
		if err != nil {
			return "", EncodeError(format, err)
		}
		return writeFile(dir, RankedPrimersJSON, string(data)+"\n")
	}

	var sb strings.Builder
	sb.WriteString(csvLine(slices.Concat(pairHeader, rankHeader)))
	for _, r := range recs {
		sb.WriteString(csvLine(append(r.pairFields(), r.rankFields()...)))
	}
	return writeFile(dir, RankedPrimersCSV, sb.String())
}

func ff(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func round2(f float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 2, 64), 64)
	return v
}
