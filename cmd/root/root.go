// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/camtparser"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/config"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/schema"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/writer"
)

// CommonFlags are the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "camt053",
		Short: "Extract normalized statements and transactions from CAMT.053 files.",
		Long: `camt053 extracts structured bank-statement data (accounts, balances,
transactions) from ISO 20022 CAMT.053 documents and emits it as JSON, YAML
or CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			if SharedFlags.Format == "" {
				SharedFlags.Format = cfg.Output.Format
			}
			if delim := cfg.Output.CSVDelimiter; delim != "" {
				writer.SetDelimiter([]rune(delim)[0])
			}
			writer.SetLogger(GetLogger())
		},
	}
)

// GetLogger returns the shared logger wrapped in the logging abstraction.
func GetLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// NewValidator builds the document validator honoring the loaded
// configuration: with strict validation off, documents in unregistered
// schema releases are still accepted.
func NewValidator() *schema.StructuralValidator {
	validator := schema.NewStructuralValidator()
	if Cfg != nil && !Cfg.Parser.StrictValidation {
		validator.AllowUnknownNamespace = true
	}
	return validator
}

// NewParser builds the extraction engine with the configured validator.
func NewParser() *camtparser.Parser {
	return camtparser.NewWithValidator(GetLogger(), NewValidator())
}

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json, yaml or csv")
}
