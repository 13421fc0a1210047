package primer3

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Parse converts raw Primer3 output into primer pairs. Records are parsed
// sequentially.
func Parse(raw string) Result {
	return ParseBlocks(raw, 1)
}

// ParseBlocks converts raw Primer3 output into primer pairs, parsing up to
// jobs records concurrently. The output order is always the record order of
// the input.
func ParseBlocks(raw string, jobs int) Result {
	blocks := SplitBlocks(raw)
	if jobs < 1 {
		jobs = 1
	}

	slots := make([]blockResult, len(blocks))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range blocks {
		g.Go(func() error {
			slots[i] = parseBlock(blocks[i])
			return nil
		})
	}
	// tasks never return errors
	_ = g.Wait()

	res := Result{Blocks: len(blocks)}
	for _, v := range slots {
		res.Pairs = append(res.Pairs, v.pairs...)
		res.Issues = append(res.Issues, v.issues...)
		if v.warning != nil {
			res.Warnings = append(res.Warnings, *v.warning)
		}
	}
	return res
}

// SplitBlocks splits Primer3 output into records. A record ends with a line
// that contains only "=". Trailing text without a terminator is kept as the
// last record. Blank records are dropped.
func SplitBlocks(raw string) []string {
	var res []string
	var lines []string

	flush := func() {
		block := strings.TrimSpace(strings.Join(lines, "\n"))
		if block != "" {
			res = append(res, block)
		}
		lines = lines[:0]
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "=" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	flush()
	return res
}

type blockResult struct {
	pairs   []PrimerPair
	issues  []error
	warning *Warning
}

// record gives typed access to the key/value map of one Primer3 record.
type record map[string]string

func newRecord(block string) record {
	res := make(record)
	for _, line := range strings.Split(block, "\n") {
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		res[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return res
}

// float returns the first present key converted to float64. Missing or
// malformed values give 0, and so do NaN and infinities.
func (r record) float(keys ...string) float64 {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

// pairIndices returns indices of primers that have at least one
// PRIMER_LEFT_i or PRIMER_RIGHT_i key.
func (r record) pairIndices() map[int]struct{} {
	res := make(map[int]struct{})
	for k := range r {
		var rest string
		switch {
		case strings.HasPrefix(k, "PRIMER_LEFT_"):
			rest = k[len("PRIMER_LEFT_"):]
		case strings.HasPrefix(k, "PRIMER_RIGHT_"):
			rest = k[len("PRIMER_RIGHT_"):]
		default:
			continue
		}
		idx, _, _ := strings.Cut(rest, "_")
		if i, err := strconv.Atoi(idx); err == nil && i >= 0 {
			res[i] = struct{}{}
		}
	}
	return res
}

func (r record) has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := r[k]; ok {
			return true
		}
	}
	return false
}

func parseBlock(block string) blockResult {
	var res blockResult
	rec := newRecord(block)

	seqID := rec["SEQUENCE_ID"]
	if seqID == "" {
		seqID = UnknownSequenceID
	}

	num := 0
	if v, ok := rec["PRIMER_PAIR_NUM_RETURNED"]; ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			res.issues = append(res.issues,
				PartialParseError(seqID, -1, "PRIMER_PAIR_NUM_RETURNED", err))
		} else if n > 0 {
			num = n
		}
	}

	if num == 0 {
		msg := "no primer pairs returned"
		if perr := rec["PRIMER_ERROR"]; perr != "" {
			msg = fmt.Sprintf("%s: %s", msg, perr)
		}
		res.warning = &Warning{SequenceID: seqID, Message: msg}
		return res
	}

	// a count larger than the primers present is cut to the primers present
	idx := rec.pairIndices()
	if num > len(idx) {
		res.issues = append(res.issues,
			PartialParseError(seqID, -1, "PRIMER_PAIR_NUM_RETURNED",
				fmt.Errorf("%d pairs declared, %d have primers", num, len(idx))))
		num = len(idx)
	}

	for i := range num {
		if _, ok := idx[i]; !ok {
			res.issues = append(res.issues,
				PartialParseError(seqID, i, fmt.Sprintf("PRIMER_LEFT_%d", i),
					fmt.Errorf("no primer keys")))
			continue
		}
		pair, err := rec.pair(seqID, i)
		if err != nil {
			res.issues = append(res.issues, err)
			continue
		}
		res.pairs = append(res.pairs, pair)
	}
	return res
}

func (r record) pair(seqID string, i int) (PrimerPair, error) {
	left, err := r.primer(seqID, "LEFT", i)
	if err != nil {
		return PrimerPair{}, err
	}
	right, err := r.primer(seqID, "RIGHT", i)
	if err != nil {
		return PrimerPair{}, err
	}

	pfx := fmt.Sprintf("PRIMER_PAIR_%d_", i)
	res := PrimerPair{
		SequenceID:   seqID,
		PairIndex:    i,
		Left:         left,
		Right:        right,
		PairComplAny: r.float(pfx+"COMPL_ANY", pfx+"COMPL_ANY_TH"),
		PairComplEnd: r.float(pfx+"COMPL_END", pfx+"COMPL_END_TH"),
		ProductTm:    r.float(pfx + "PRODUCT_TM"),
	}

	if v, ok := r[pfx+"PRODUCT_SIZE"]; ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return PrimerPair{}, PartialParseError(seqID, i, pfx+"PRODUCT_SIZE", err)
		}
		res.ProductSize = size
	}

	res.HasDimer = r.hasDimer("LEFT", i) || r.hasDimer("RIGHT", i) ||
		r.has(pfx+"COMPL_ANY", pfx+"COMPL_ANY_TH", pfx+"COMPL_END", pfx+"COMPL_END_TH")
	return res, nil
}

func (r record) primer(seqID, side string, i int) (Primer, error) {
	pfx := fmt.Sprintf("PRIMER_%s_%d", side, i)
	res := Primer{
		Sequence:     r[pfx+"_SEQUENCE"],
		Tm:           r.float(pfx + "_TM"),
		GC:           r.float(pfx + "_GC_PERCENT"),
		SelfAny:      r.float(pfx+"_SELF_ANY", pfx+"_SELF_ANY_TH"),
		SelfEnd:      r.float(pfx+"_SELF_END", pfx+"_SELF_END_TH"),
		Hairpin:      r.float(pfx+"_HAIRPIN", pfx+"_HAIRPIN_TH"),
		EndStability: r.float(pfx + "_END_STABILITY"),
	}
	res.Length = len(res.Sequence)

	pos, ok := r[pfx]
	if !ok || pos == "" {
		return res, nil
	}

	start, length, hasLength := strings.Cut(pos, ",")
	n, err := strconv.Atoi(strings.TrimSpace(start))
	if err != nil {
		return Primer{}, PartialParseError(seqID, i, pfx, err)
	}
	res.Start = n
	if hasLength {
		n, err = strconv.Atoi(strings.TrimSpace(length))
		if err != nil {
			return Primer{}, PartialParseError(seqID, i, pfx, err)
		}
		res.Length = n
	}
	return res, nil
}

func (r record) hasDimer(side string, i int) bool {
	pfx := fmt.Sprintf("PRIMER_%s_%d", side, i)
	return r.has(
		pfx+"_SELF_ANY", pfx+"_SELF_ANY_TH",
		pfx+"_SELF_END", pfx+"_SELF_END_TH",
		pfx+"_HAIRPIN", pfx+"_HAIRPIN_TH",
	)
}
