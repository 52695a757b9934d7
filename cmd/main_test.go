package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWritesDatasets(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("GEN_SEED", "99")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	require.NoError(t, run(&out))

	assert.Contains(t, out.String(), "Dataset Generation Complete!")
	assert.Contains(t, out.String(), "Weekly impression files: 14")
	assert.Contains(t, out.String(), "Monthly impression files: 3")
	assert.Contains(t, out.String(), "Conversion files: 3")
	assert.Contains(t, out.String(), "Revenue files: 90")

	for _, rel := range []string{
		"ads.json",
		"impressions/weekly/2024-12-30.json",
		"impressions/weekly/2025-03-31.json",
		"impressions/monthly/2025/02.json",
		"conversions/2025-03.json",
		"revenue/2025-01-01.json",
		"revenue/2025-03-31.json",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, rel)
	}
}

func TestRunFailsWhenOutputBlocked(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))
	t.Setenv("OUTPUT_DIR", blocker)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	require.Error(t, run(&out))
	assert.Empty(t, out.String())
}
