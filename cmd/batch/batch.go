// Package batch implements the batch command, which converts every
// CAMT.053 XML file in a directory.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/root"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/fileutils"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/writer"
)

// Cmd is the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all CAMT.053 files in a directory",
	Long: `Batch converts every .xml file in the input directory, writing one
output file per input into the output directory. A file that fails to parse
is logged and skipped; the remaining files are still converted.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("both --input (directory) and --output (directory) are required")
	}

	info, err := os.Stat(inputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	format, err := writer.ParseFormat(root.SharedFlags.Format)
	if err != nil {
		return err
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	log := root.GetLogger()
	parser := root.NewParser()

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	converted, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outputFile := filepath.Join(outputDir, base+"."+string(format))

		statements, err := parser.ParseFile(inputFile)
		if err != nil {
			log.WithError(err).Error("Skipping file that failed to parse",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			failed++
			continue
		}

		if err := writer.WriteFile(statements, outputFile, format); err != nil {
			log.WithError(err).Error("Failed to write output file",
				logging.Field{Key: logging.FieldOutputFile, Value: outputFile})
			failed++
			continue
		}

		log.Info("Converted file",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile},
			logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
			logging.Field{Key: logging.FieldStatements, Value: len(statements)})
		converted++
	}

	root.Log.Infof("Batch conversion finished: %d converted, %d failed", converted, failed)
	if converted == 0 && failed > 0 {
		return fmt.Errorf("no files converted (%d failed)", failed)
	}
	return nil
}
