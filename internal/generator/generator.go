// Package generator produces deterministic corpora of mixed-content project
// files used to exercise the parser harness.
package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/ogreyling/parsemock/internal/logging"
)

// FilePattern is the glob matching generated file names.
const FilePattern = "mixed_file_*.txt"

// Options controls a generation run.
type Options struct {
	OutDir       string
	NumFiles     int
	LinesPerFile int
	Seed         int64
}

// Validate reports the first problem with the options, if any.
func (o Options) Validate() error {
	if o.OutDir == "" {
		return errors.New("output directory must not be empty")
	}
	if o.NumFiles <= 0 {
		return fmt.Errorf("num files must be positive, got %d", o.NumFiles)
	}
	if o.LinesPerFile <= 0 {
		return fmt.Errorf("lines per file must be positive, got %d", o.LinesPerFile)
	}
	return nil
}

// lineShapes are the templates lines are drawn from. The mix of pseudo
// declarations, comments, and prose mirrors the project files the harness
// was built to feed a parser.
var lineShapes = []string{
	"procedure Step_%d is begin null; end Step_%d;",
	"-- comment block %d",
	"X_%d : Integer := %d;",
	"plain text filler line %d",
	"function Probe_%d return Boolean;",
}

// Generate writes NumFiles files named mixed_file_NNN.txt into OutDir, each
// LinesPerFile lines long. Output is deterministic for a fixed seed. The
// created paths are returned in creation order.
func Generate(ctx context.Context, fs afero.Fs, opts Options) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := logging.Get(ctx)

	if err := fs.MkdirAll(opts.OutDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutDir, err)
	}

	rng := rand.New(rand.NewSource(opts.Seed)) //nolint:gosec // corpus generation, not crypto
	paths := make([]string, 0, opts.NumFiles)

	for i := 0; i < opts.NumFiles; i++ {
		path := filepath.Join(opts.OutDir, fmt.Sprintf("mixed_file_%03d.txt", i))
		if err := afero.WriteFile(fs, path, fileContent(rng, opts.LinesPerFile), 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	log.Info().Int("files", len(paths)).Str("dir", opts.OutDir).Msg("corpus generated")
	return paths, nil
}

func fileContent(rng *rand.Rand, lines int) []byte {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		shape := lineShapes[rng.Intn(len(lineShapes))]
		n := strings.Count(shape, "%d")
		args := make([]any, n)
		for j := 0; j < n; j++ {
			args[j] = rng.Intn(1000)
		}
		fmt.Fprintf(&b, shape, args...)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
