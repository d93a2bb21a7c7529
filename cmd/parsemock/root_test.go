package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()

	for _, name := range []string{"serve", "send", "generate", "fetch"} {
		sub, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, "expected %s command to exist", name)
		require.NotNil(t, sub)
		assert.NotNil(t, sub.RunE, "expected %s command to have RunE wired", name)
	}
}

func TestRootCommandConfigFlagDefault(t *testing.T) {
	t.Parallel()

	rootCmd := createRootCommand()

	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "parsemock.yml", flag.DefValue)
}

func TestMissingConfigFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	// Persistent flags only merge into a subcommand's flag set during
	// Execute, so the fallback has to be exercised through a real run. A
	// successful generate with a nonexistent config file proves the
	// defaults stood in.
	outDir := filepath.Join(t.TempDir(), "out")

	rootCmd := createRootCommand()
	rootCmd.SetArgs([]string{
		"generate",
		"--config", "/does/not/exist.yml",
		"--out", outDir,
		"--num-files", "2",
		"--lines-per-file", "3",
	})

	require.NoError(t, rootCmd.Execute())

	files, err := filepath.Glob(filepath.Join(outDir, "mixed_file_*.txt"))
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
