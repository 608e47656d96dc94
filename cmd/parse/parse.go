// Package parse implements the parse command, which extracts statements
// from a CAMT.053 file and writes them in the requested output format.
package parse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/root"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/fileutils"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/writer"
)

// Cmd is the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CAMT.053 file and output its statements",
	Long: `Parse an ISO 20022 CAMT.053 XML file and emit the extracted
statements as JSON, YAML or CSV. Output goes to stdout unless -o is given.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no input file specified, use --input or pass a file argument")
	}
	if !fileutils.FileExists(input) {
		return fmt.Errorf("input file does not exist: %s", input)
	}

	format, err := writer.ParseFormat(root.SharedFlags.Format)
	if err != nil {
		return err
	}

	parser := root.NewParser()

	statements, err := parser.ParseFile(input)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", input, err)
	}

	if output := root.SharedFlags.Output; output != "" {
		if err := writer.WriteFile(statements, output, format); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		root.Log.Infof("Wrote %d statement(s) to %s", len(statements), output)
		return nil
	}
	return writer.Write(statements, os.Stdout, format)
}
