package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI in-process against a throwaway database.
func execute(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TITLEGUARD_DATABASE_PATH", dbPath)
	t.Setenv("TITLEGUARD_CACHE_BACKEND", "none")
	color.NoColor = true

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestClassifyCommand_JSON(t *testing.T) {
	classifyJSON = false
	out, err := execute(t, ":memory:", "classify", "--json", "This is how to cook pasta", "You need this trick")
	require.NoError(t, err)

	var results []struct {
		Title      string   `json:"title"`
		Score      int      `json:"score"`
		Blocked    bool     `json:"blocked"`
		Reasons    []string `json:"reasons"`
		ReasonText string   `json:"reason_text"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.False(t, results[0].Blocked)
	assert.True(t, results[1].Blocked)
	assert.Equal(t, 20, results[1].Score)
	assert.Equal(t, "Deictic pointing to undefined noun, No specific subject/anchor detected", results[1].ReasonText)
	classifyJSON = false
}

func TestRulesAndCheckCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	// 1. Add a rule and block a video
	out, err := execute(t, db, "rules", "add", "exposed")
	require.NoError(t, err)
	assert.Contains(t, out, `Added rule 1: "exposed"`)

	out, err = execute(t, db, "block", "https://www.youtube.com/shorts/AbCdEfGhIjK", "Some", "Short")
	require.NoError(t, err)
	assert.Contains(t, out, "Blocked AbCdEfGhIjK: Some Short")

	// 2. Rule tester over the built-in sample titles
	out, err = execute(t, db, "rules", "test")
	require.NoError(t, err)
	assert.Contains(t, out, `"SCAMMER Gets EXPOSED!!!" (matches: exposed)`)
	assert.Contains(t, out, "Tested 11 titles: 1 blocked, 10 allowed")

	// 3. The blocklist wins for an innocent title
	checkURL = ""
	out, err = execute(t, db, "check", "--url", "/shorts/AbCdEfGhIjK", "Cat videos")
	require.NoError(t, err)
	assert.Contains(t, out, "BLOCKED by video_id")
	checkURL = ""

	// 4. Listing and removal
	out, err = execute(t, db, "blocked", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "AbCdEfGhIjK")

	_, err = execute(t, db, "unblock", "AbCdEfGhIjK")
	require.NoError(t, err)
	_, err = execute(t, db, "unblock", "AbCdEfGhIjK")
	assert.Error(t, err)
}

func TestDoctorCommand(t *testing.T) {
	out, err := execute(t, ":memory:", "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Database connection successful.")
	assert.Contains(t, out, "Tagger OK (block threshold 10).")
}

func TestGetAppFromContext_Missing(t *testing.T) {
	_, err := GetAppFromContext(context.Background())
	assert.Error(t, err)
}
