package iopresence_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/internal/iopresence"
	"github.com/gnames/gnprimer/pkg/errcode"
	"github.com/gnames/gnprimer/pkg/presence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roary = `"Gene","Non-unique Gene name","Annotation","No. isolates","No. sequences","Avg sequences per isolate","Genome Fragment","Order within Fragment","Accessory Fragment","Accessory Order with Fragment","QC","Min group size nuc","Max group size nuc","Avg group size nuc","Tar_1","Tar_2","Out_1"
"g1","","hypothetical protein","2","2","1","1","1","","","","300","300","300","t1_001","t2_001",""
"g2","","DNA gyrase","3","3","1","1","2","","","","900","900","900","t1_002","t2_002","o1_002"
"g3","","transporter, putative","1","1","1","1","3","","","","450","450","450","t1_003","NA",""
"g4","","hypothetical protein","2","2","1","1","4","","","","210","210","210","t1_004","t2_004","  "
`

func codeOf(t *testing.T, err error) gn.ErrorCode {
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	return gnErr.Code
}

func TestParse(t *testing.T) {
	assert := assert.New(t)
	tbl, err := iopresence.Parse(strings.NewReader(roary), "test.csv")
	require.NoError(t, err)

	assert.Len(tbl.Columns, 17)
	assert.Equal([]string{"Tar_1", "Tar_2", "Out_1"}, tbl.Samples())
	require.Len(t, tbl.Rows, 4)

	g1 := tbl.Rows[0]
	assert.Equal("g1", g1.Gene)
	assert.Equal("hypothetical protein", g1.Annotation)
	assert.Equal(map[string]string{
		"Tar_1": "t1_001", "Tar_2": "t2_001", "Out_1": "",
	}, g1.Loci)

	assert.Equal("", tbl.Rows[2].Loci["Tar_2"], "NA is absent")
	assert.Equal("", tbl.Rows[3].Loci["Out_1"], "whitespace is absent")
	assert.Equal("transporter, putative", tbl.Rows[2].Annotation)
}

func TestParseThenFilter(t *testing.T) {
	assert := assert.New(t)
	tbl, err := iopresence.Parse(strings.NewReader(roary), "test.csv")
	require.NoError(t, err)

	targets, outgroups, err := presence.ClassifySamples(tbl.Columns, "Tar_")
	require.NoError(t, err)
	assert.Equal([]string{"Tar_1", "Tar_2"}, targets)
	assert.Equal([]string{"Out_1"}, outgroups)

	res, err := presence.FilterSpecificGenes(tbl.Rows, targets, outgroups, 2)
	require.NoError(t, err)
	var genes []string
	for _, v := range res.Genes {
		genes = append(genes, v.Gene)
	}
	assert.Equal([]string{"g1", "g4"}, genes)
	assert.Equal(0, res.Failed)
}

func TestParseShortRow(t *testing.T) {
	assert := assert.New(t)
	data := "Gene,Annotation,S_1,S_2\ng1,a,x\n"
	tbl, err := iopresence.Parse(strings.NewReader(data), "short.csv")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	_, ok := tbl.Rows[0].Loci["S_2"]
	assert.False(ok)

	res, err := presence.FilterSpecificGenes(
		tbl.Rows, []string{"S_1", "S_2"}, nil, 1,
	)
	assert.Equal(errcode.NoSpecificGeneError, codeOf(t, err))
	assert.Equal(1, res.Failed)
	require.Len(t, res.Issues, 1)
	assert.Equal(errcode.MissingColumnError, codeOf(t, res.Issues[0]))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		msg, data string
		code      gn.ErrorCode
	}{
		{"empty", "", errcode.EmptyInputError},
		{"header only", "Gene,Annotation,S_1\n", errcode.EmptyInputError},
		{"no gene column", "Name,S_1\ng1,x\n", errcode.MissingColumnError},
	}

	for _, v := range tests {
		_, err := iopresence.Parse(strings.NewReader(v.data), "bad.csv")
		require.Error(t, err, v.msg)
		assert.Equal(t, v.code, codeOf(t, err), v.msg)
	}
}

func TestParseBOMAndNoAnnotation(t *testing.T) {
	assert := assert.New(t)
	data := "\xEF\xBB\xBFGene,S_1\n,skip\ng1,x\n"
	tbl, err := iopresence.Parse(strings.NewReader(data), "bom.csv")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal("g1", tbl.Rows[0].Gene)
	assert.Equal("", tbl.Rows[0].Annotation)
}

func TestRead(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "gene_presence_absence.csv")
	require.NoError(t, os.WriteFile(path, []byte(roary), 0644))

	tbl, err := iopresence.Read(path)
	require.NoError(t, err)
	assert.Len(tbl.Rows, 4)

	_, err = iopresence.Read(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	assert.Equal(errcode.ReadFileError, codeOf(t, err))
}
