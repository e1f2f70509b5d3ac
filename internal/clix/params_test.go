package clix

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("file", "", "")
	fs.Int("threshold", 10, "")
	return fs
}

func TestReadTitles_Args(t *testing.T) {
	titles, err := ReadTitles(newFlags(), []string{"  This is INSANE ", "", "You need this"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"This is INSANE", "You need this"}, titles)
}

func TestReadTitles_Stdin(t *testing.T) {
	titles, err := ReadTitles(newFlags(), []string{"-"}, strings.NewReader("one\n\n two \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, titles)
}

func TestReadTitles_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\nsecond\n"), 0o600))

	fs := newFlags()
	require.NoError(t, fs.Set("file", path))
	titles, err := ReadTitles(fs, []string{"ignored"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, titles)

	require.NoError(t, fs.Set("file", filepath.Join(t.TempDir(), "missing.txt")))
	_, err = ReadTitles(fs, nil, nil)
	assert.Error(t, err)
}

func TestParseThreshold(t *testing.T) {
	fs := newFlags()
	th, err := ParseThreshold(fs)
	require.NoError(t, err)
	assert.Zero(t, th)

	require.NoError(t, fs.Set("threshold", "25"))
	th, err = ParseThreshold(fs)
	require.NoError(t, err)
	assert.Equal(t, 25, th)

	require.NoError(t, fs.Set("threshold", "-1"))
	_, err = ParseThreshold(fs)
	assert.Error(t, err)
}
