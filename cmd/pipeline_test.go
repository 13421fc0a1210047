package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gnprimer/internal/iooutput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roaryCSV = `"Gene","Non-unique Gene name","Annotation","No. isolates","No. sequences","Avg sequences per isolate","Genome Fragment","Order within Fragment","Accessory Fragment","Accessory Order with Fragment","QC","Min group size nuc","Max group size nuc","Avg group size nuc","Tar_1","Tar_2","Out_1"
"g1","","hypothetical protein","2","2","1","1","1","","","","300","300","300","t1_001","t2_001",""
"g2","","DNA gyrase","3","3","1","1","2","","","","900","900","900","t1_002","t2_002","o1_002"
"g3","","transporter, putative","1","1","1","1","3","","","","450","450","450","t1_003","NA",""
"g4","","hypothetical protein","2","2","1","1","4","","","","210","210","210","t1_004","t2_004",""
`

const primer3Output = `SEQUENCE_ID=g1
SEQUENCE_TEMPLATE=ATGCATGCATGC
PRIMER_PAIR_NUM_RETURNED=2
PRIMER_LEFT_0_SEQUENCE=AGCTGACTGACTGACTGACT
PRIMER_RIGHT_0_SEQUENCE=TCAGTCAGTCAGTCAGTCAG
PRIMER_LEFT_0=10,20
PRIMER_RIGHT_0=109,20
PRIMER_LEFT_0_TM=60.1
PRIMER_RIGHT_0_TM=59.8
PRIMER_LEFT_0_GC_PERCENT=50.0
PRIMER_RIGHT_0_GC_PERCENT=50.0
PRIMER_PAIR_0_PRODUCT_SIZE=100
PRIMER_LEFT_1_SEQUENCE=GCTGACTGACTGACTGACTA
PRIMER_RIGHT_1_SEQUENCE=CAGTCAGTCAGTCAGTCAGT
PRIMER_LEFT_1=11,20
PRIMER_RIGHT_1=180,19
PRIMER_LEFT_1_TM=56
PRIMER_RIGHT_1_TM=64
PRIMER_LEFT_1_GC_PERCENT=35.0
PRIMER_RIGHT_1_GC_PERCENT=65.0
PRIMER_PAIR_1_PRODUCT_SIZE=170
=
`

// template120 is a 120 bp sequence without gaps.
var template120 = strings.Repeat("ACGTTGCAAGGCTTCA", 7)[:120]

// runCmd executes gnprimer with arguments.
func runCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := getRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	bs, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(bs)
}

func TestPipeline(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("HOME", t.TempDir())
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "results")

	roary := filepath.Join(in, "gene_presence_absence.csv")
	require.NoError(t, os.WriteFile(roary, []byte(roaryCSV), 0644))

	err := runCmd(t, "genes", "-i", roary, "-g", "Tarantula", "-o", out)
	require.NoError(t, err)
	assert.Equal("g1\ng4\n", readOutput(t, out, iooutput.SpecificGenesFile))
	details := readOutput(t, out, iooutput.SpecificDetailsFile)
	assert.Contains(details, "g1,hypothetical protein")

	alnDir := filepath.Join(in, "alignments")
	require.NoError(t, os.Mkdir(alnDir, 0755))
	aln := ">s1\n" + template120 + "\n>s2\n" + template120 + "\n"
	err = os.WriteFile(filepath.Join(alnDir, "g1_aln.fasta"), []byte(aln), 0644)
	require.NoError(t, err)

	err = runCmd(t, "conserved", "-i", alnDir, "-o", out)
	require.NoError(t, err)
	regions := readOutput(t, out, iooutput.RegionsFile)
	assert.Contains(regions, "g1\t1-120\t120\t"+template120)

	err = runCmd(t, "design-input",
		"-i", filepath.Join(out, iooutput.RegionsFile), "-o", out)
	require.NoError(t, err)
	p3in := readOutput(t, out, iooutput.Primer3InputFile)
	assert.Contains(p3in, "SEQUENCE_ID=g1\n")
	assert.Contains(p3in, "SEQUENCE_TEMPLATE="+template120+"\n")
	assert.True(strings.HasSuffix(p3in, "=\n"))

	p3out := filepath.Join(in, "primer3_output.txt")
	require.NoError(t, os.WriteFile(p3out, []byte(primer3Output), 0644))

	err = runCmd(t, "parse", "-i", p3out, "-o", out)
	require.NoError(t, err)
	parsed := readOutput(t, out, iooutput.ParsedPrimersFile)
	lines := strings.Split(strings.TrimSpace(parsed), "\n")
	assert.Len(lines, 3)
	assert.True(strings.HasPrefix(lines[1], "g1,0,AGCTGACTGACTGACTGACT,"))

	err = runCmd(t, "rank", "-i", p3out, "-o", out, "-f", "json",
		"--store", "sqlite")
	require.NoError(t, err)
	ranked := readOutput(t, out, iooutput.RankedPrimersJSON)
	best := strings.Index(ranked, `"AGCTGACTGACTGACTGACT"`)
	worst := strings.Index(ranked, `"GCTGACTGACTGACTGACTA"`)
	require.Greater(t, best, 0)
	assert.Less(best, worst)
	assert.Contains(ranked, `"globalRank": 1`)
	_, err = os.Stat(filepath.Join(out, "gnprimer.sqlite"))
	assert.NoError(err)
}

func TestGenesNoTargets(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	in := t.TempDir()
	roary := filepath.Join(in, "roary.csv")
	require.NoError(t, os.WriteFile(roary, []byte(roaryCSV), 0644))

	err := runCmd(t, "genes", "-i", roary, "-p", "Abc_", "-o", t.TempDir())
	assert.Error(t, err)
}

func TestParseNoPairs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	in := filepath.Join(t.TempDir(), "empty.txt")
	data := "SEQUENCE_ID=g1\nPRIMER_PAIR_NUM_RETURNED=0\n=\n"
	require.NoError(t, os.WriteFile(in, []byte(data), 0644))

	err := runCmd(t, "parse", "-i", in, "-o", t.TempDir())
	assert.Error(t, err)
}

func TestMissingInputFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	err := runCmd(t, "rank")
	assert.Error(t, err)
}
