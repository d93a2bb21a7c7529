package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ogreyling/parsemock/internal/generator"
)

// createGenerateCommand creates the generate command producing a corpus of
// mixed-content project files.
func createGenerateCommand() *cobra.Command {
	var (
		outDir       string
		numFiles     int
		linesPerFile int
		seed         int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a corpus of mixed project files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Generator.OutDir
			}
			if numFiles == 0 {
				numFiles = cfg.Generator.NumFiles
			}
			if linesPerFile == 0 {
				linesPerFile = cfg.Generator.LinesPerFile
			}

			ctx, err := initLogging(cmd, cfg, "generator")
			if err != nil {
				return err
			}

			paths, err := generator.Generate(ctx, afero.NewOsFs(), generator.Options{
				OutDir:       outDir,
				NumFiles:     numFiles,
				LinesPerFile: linesPerFile,
				Seed:         seed,
			})
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			status := color.New(color.FgGreen)
			_, _ = status.Fprintf(os.Stderr, "wrote %d files to %s\n", len(paths), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config)")
	cmd.Flags().IntVar(&numFiles, "num-files", 0, "Number of files to create (default from config)")
	cmd.Flags().IntVar(&linesPerFile, "lines-per-file", 0, "Lines per file (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for deterministic output")

	return cmd
}
