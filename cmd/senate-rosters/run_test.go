package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/senate-rosters/internal/export"
	"github.com/pdiddy/senate-rosters/internal/source/sourcetest"
	"github.com/pdiddy/senate-rosters/pkg/types"
)

func testConfig() types.Config {
	return types.Config{
		InputDir:    sourcetest.Dir,
		Output:      "/out/" + types.DefaultOutputFile,
		PreviewRows: 5,
		LogLevel:    "info",
	}
}

func TestRunPipeline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)
	sourcetest.WriteRoster(t, fs, "SSAF", sourcetest.Agriculture)
	sourcetest.WriteRoster(t, fs, "SSRA", sourcetest.Malformed)

	c := testConfig()
	var out bytes.Buffer
	require.NoError(t, runPipeline(context.Background(), sourcetest.Options(fs), c, &out))

	console := out.String()
	assert.Contains(t, console, "Members DF preview:")
	assert.Contains(t, console, "Hierarchy map preview:")
	assert.Contains(t, console, "Merged members with hierarchy preview:")
	assert.Contains(t, console, "[INFO] Exported members_with_hierarchy to "+c.Output)

	data, err := afero.ReadFile(fs, c.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, strings.Join(export.MergedColumns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "SSAF,Agriculture,SSAF,Rural Development,SSAF14,Bo,Baker,"))
	assert.True(t, strings.HasSuffix(lines[5], ",Jane Doe,Banking,Main Committee,Main Committee"))
	for _, line := range lines[1:] {
		assert.NotContains(t, line, "SSRA")
	}
}

func TestRunPipeline_Deterministic(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)
	sourcetest.WriteRoster(t, fs, "SSAF", sourcetest.Agriculture)

	c := testConfig()
	var out bytes.Buffer

	require.NoError(t, runPipeline(context.Background(), sourcetest.Options(fs), c, &out))
	first, err := afero.ReadFile(fs, c.Output)
	require.NoError(t, err)

	require.NoError(t, runPipeline(context.Background(), sourcetest.Options(fs), c, &out))
	second, err := afero.ReadFile(fs, c.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunPipeline_NoFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	c := testConfig()
	var out bytes.Buffer
	require.NoError(t, runPipeline(context.Background(), sourcetest.Options(fs), c, &out))

	data, err := afero.ReadFile(fs, c.Output)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(export.MergedColumns, ",")+"\n", string(data))
	assert.Contains(t, out.String(), "Empty table")
}

func TestRunPipeline_SQLite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	sourcetest.WriteRoster(t, fs, "SSBK", sourcetest.Banking)

	c := testConfig()
	c.SQLitePath = filepath.Join(t.TempDir(), "rosters.db")
	var out bytes.Buffer
	require.NoError(t, runPipeline(context.Background(), sourcetest.Options(fs), c, &out))

	store, err := export.OpenStore(c.SQLitePath)
	require.NoError(t, err)
	defer store.Close()

	for table, want := range map[string]int{
		export.MembersTable:   2,
		export.HierarchyTable: 2,
		export.MergedTable:    2,
	} {
		var n int
		require.NoError(t, store.DB().QueryRow(`SELECT count(*) FROM `+table).Scan(&n))
		assert.Equal(t, want, n, table)
	}
}
