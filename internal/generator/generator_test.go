package generator

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/ogreyling/parsemock/internal/testing"
)

func TestGenerate_SmallSet(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ctx, _ := testutil.NewTestContext(t)

	paths, err := Generate(ctx, fs, Options{
		OutDir:       "/out",
		NumFiles:     5,
		LinesPerFile: 20,
	})
	require.NoError(t, err)
	require.Len(t, paths, 5)

	matches, err := afero.Glob(fs, filepath.Join("/out", FilePattern))
	require.NoError(t, err)
	assert.Len(t, matches, 5)

	for _, path := range paths {
		content, readErr := afero.ReadFile(fs, path)
		require.NoError(t, readErr)
		assert.NotEmpty(t, content, "generated file %s should be non-empty", path)

		lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
		assert.Len(t, lines, 20, "file %s line count", path)
	}
}

func TestGenerate_FileNamesAreZeroPadded(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	ctx, _ := testutil.NewTestContext(t)

	paths, err := Generate(ctx, fs, Options{OutDir: "/out", NumFiles: 2, LinesPerFile: 1})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/out", "mixed_file_000.txt"), paths[0])
	assert.Equal(t, filepath.Join("/out", "mixed_file_001.txt"), paths[1])
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	opts := Options{OutDir: "/out", NumFiles: 3, LinesPerFile: 10, Seed: 42}

	fsA := afero.NewMemMapFs()
	pathsA, err := Generate(ctx, fsA, opts)
	require.NoError(t, err)

	fsB := afero.NewMemMapFs()
	pathsB, err := Generate(ctx, fsB, opts)
	require.NoError(t, err)

	require.Equal(t, pathsA, pathsB)
	for i := range pathsA {
		contentA, readErr := afero.ReadFile(fsA, pathsA[i])
		require.NoError(t, readErr)
		contentB, readErr := afero.ReadFile(fsB, pathsB[i])
		require.NoError(t, readErr)
		assert.Equal(t, string(contentA), string(contentB))
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)

	fsA := afero.NewMemMapFs()
	_, err := Generate(ctx, fsA, Options{OutDir: "/out", NumFiles: 1, LinesPerFile: 50, Seed: 1})
	require.NoError(t, err)

	fsB := afero.NewMemMapFs()
	_, err = Generate(ctx, fsB, Options{OutDir: "/out", NumFiles: 1, LinesPerFile: 50, Seed: 2})
	require.NoError(t, err)

	contentA, err := afero.ReadFile(fsA, "/out/mixed_file_000.txt")
	require.NoError(t, err)
	contentB, err := afero.ReadFile(fsB, "/out/mixed_file_000.txt")
	require.NoError(t, err)
	assert.NotEqual(t, string(contentA), string(contentB))
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "valid options",
			opts:    Options{OutDir: "/out", NumFiles: 1, LinesPerFile: 1},
			wantErr: "",
		},
		{
			name:    "empty out dir",
			opts:    Options{NumFiles: 1, LinesPerFile: 1},
			wantErr: "output directory",
		},
		{
			name:    "zero files",
			opts:    Options{OutDir: "/out", LinesPerFile: 1},
			wantErr: "num files",
		},
		{
			name:    "negative lines",
			opts:    Options{OutDir: "/out", NumFiles: 1, LinesPerFile: -1},
			wantErr: "lines per file",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
