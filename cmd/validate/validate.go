// Package validate implements the validate command, which checks whether a
// file is an extractable CAMT.053 document without producing output.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darko-mijic/iso-20022-camt-053-parser/cmd/root"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/fileutils"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/parsererror"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/schema"
)

// Cmd is the validate command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a file is a well-formed, supported CAMT.053 document",
	Long: `Validate reads a file and reports whether it satisfies the
extraction preconditions: well-formed XML, a Document root in a supported
CAMT.053 namespace, and a bank-to-customer statement container. The exit
code is non-zero when validation fails.`,
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

	log := root.GetLogger()

	data, err := os.ReadFile(input) // #nosec G304 -- CLI tool takes user-provided input paths
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	namespace, err := schema.DetectNamespace(data)
	if err != nil {
		return reportInvalid(log, input, err)
	}

	validator := root.NewValidator()
	if err := validator.Validate(data, namespace); err != nil {
		return reportInvalid(log, input, err)
	}

	log.Info("Document is a valid CAMT.053 statement file",
		logging.Field{Key: logging.FieldFile, Value: input},
		logging.Field{Key: logging.FieldNamespace, Value: namespace})
	fmt.Printf("%s: valid (%s)\n", input, namespace)
	return nil
}

func reportInvalid(log logging.Logger, input string, err error) error {
	log.WithError(err).Error("Document failed validation",
		logging.Field{Key: logging.FieldFile, Value: input})
	if parsererror.IsDocumentError(err) {
		return fmt.Errorf("%s is not a valid CAMT.053 document: %w", input, err)
	}
	return fmt.Errorf("validation of %s failed: %w", input, err)
}
