package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/gnprimer/pkg/quality"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRootCmd(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "gnprimer", cmd.Use)
	assert.NotNil(t, cmd.PersistentPreRunE)

	var names []string
	for _, v := range cmd.Commands() {
		names = append(names, v.Name())
	}
	for _, v := range []string{
		"genes", "conserved", "design-input", "parse", "rank", "config",
	} {
		assert.Contains(t, names, v)
	}
}

// TestGetRootCmd_ShortVersionFlag verifies -V flag works.
func TestGetRootCmd_ShortVersionFlag(t *testing.T) {
	for _, flag := range []string{"-V", "--version"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "v1.2.3", flag)
		assert.Contains(t, buf.String(), "abc123", flag)
	}
}

func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	assert.Contains(t, help, "gnprimer")
	assert.Contains(t, help, "GNPRIMER_")
	assert.Contains(t, help, "Roary")
}

func TestPersistentFlags(t *testing.T) {
	cmd := getRootCmd()
	pf := cmd.PersistentFlags()

	tests := []struct {
		name, short string
	}{
		{"output", "o"},
		{"jobs", "j"},
		{"store", ""},
		{"sqlite-path", ""},
	}
	for _, v := range tests {
		f := pf.Lookup(v.name)
		require.NotNil(t, f, v.name)
		assert.Equal(t, v.short, f.Shorthand, v.name)
	}
}

func TestSubcommandFlags(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		flags []string
	}{
		{getGenesCmd(), []string{"input", "genus", "prefix", "all-specific"}},
		{getConservedCmd(), []string{"input", "min-length", "max-length"}},
		{getDesignInputCmd(), []string{"input"}},
		{getParseCmd(), []string{"input"}},
		{getRankCmd(), []string{"input", "format", "top"}},
	}

	for _, v := range tests {
		assert.NotNil(t, v.cmd.RunE, v.cmd.Name())
		assert.NotEmpty(t, v.cmd.Short, v.cmd.Name())
		for _, f := range v.flags {
			assert.NotNil(t, v.cmd.Flags().Lookup(f), v.cmd.Name()+" --"+f)
		}
		input := v.cmd.Flags().Lookup("input")
		assert.Equal(t, "i", input.Shorthand)
		assert.Equal(t,
			[]string{"true"},
			input.Annotations[cobra.BashCompOneRequiredFlag],
			v.cmd.Name(),
		)
	}
}

func TestRankHelpGrades(t *testing.T) {
	long := getRankCmd().Long
	assert.Contains(t, long, "A+ (>= 90)")
	assert.Contains(t, long, "D (< 65)")
	assert.Equal(t, "A+", quality.Grade(90))
	assert.Equal(t, "C", quality.Grade(65))
	assert.Equal(t, "D", quality.Grade(64.99))
}
