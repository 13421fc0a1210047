package iooutput

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/gnames/gnprimer/pkg/conserved"
)

var regionsHeader = []string{"Gene", "Position", "Length", "Sequence"}

// WriteRegions saves conserved regions as a tab-separated table. Genes
// without a region have position "none" and length 0.
func WriteRegions(dir string, regions []conserved.Region) (string, error) {
	var sb strings.Builder
	sb.WriteString(strings.Join(regionsHeader, "\t"))
	sb.WriteByte('\n')
	for _, r := range regions {
		row := []string{
			r.Gene,
			r.Position(),
			strconv.Itoa(r.Length),
			r.Consensus,
		}
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}
	return writeFile(dir, RegionsFile, sb.String())
}

// ReadRegions loads a table written by WriteRegions.
func ReadRegions(path string) ([]conserved.Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var res []conserved.Region
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var line int
	for sc.Scan() {
		line++
		s := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(s) == "" {
			continue
		}
		fields := strings.Split(s, "\t")
		if line == 1 && fields[0] == regionsHeader[0] {
			continue
		}
		r, err := parseRegion(fields)
		if err != nil {
			return nil, RegionFormatError(path, line, err)
		}
		res = append(res, r)
	}
	if err := sc.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

func parseRegion(fields []string) (conserved.Region, error) {
	var res conserved.Region
	if len(fields) < 3 {
		return res, errFieldsNum
	}
	res.Gene = fields[0]

	length, err := strconv.Atoi(fields[2])
	if err != nil {
		return res, err
	}
	if fields[1] == "none" || length == 0 {
		return res, nil
	}

	start, end, ok := strings.Cut(fields[1], "-")
	if !ok {
		return res, errPosition
	}
	if res.Start, err = strconv.Atoi(start); err != nil {
		return res, err
	}
	if res.End, err = strconv.Atoi(end); err != nil {
		return res, err
	}
	if res.End-res.Start+1 != length {
		return res, errPosition
	}
	res.Length = length
	if len(fields) > 3 {
		res.Consensus = fields[3]
	}
	if len(res.Consensus) != length {
		return res, errSequence
	}
	return res, nil
}
