// Package camtparser is the statement and transaction extraction engine for
// CAMT.053 documents. It walks a parsed XML tree and produces the normalized
// statement list, resolving every output field through an ordered candidate
// list over the competing source elements banks populate.
package camtparser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/models"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/parsererror"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/schema"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/xmlutils"
)

// Parser extracts normalized statements from CAMT.053 documents. Once the
// document passes its preconditions, extraction is total: per-statement and
// per-entry resolution never aborts, fields only degrade to absent.
type Parser struct {
	logger    logging.Logger
	validator schema.Validator
}

// New creates a Parser using the default structural validator.
func New(logger logging.Logger) *Parser {
	return NewWithValidator(logger, schema.NewStructuralValidator())
}

// NewWithValidator creates a Parser with a custom document validator, e.g.
// a full XSD processor.
func NewWithValidator(logger logging.Logger, validator schema.Validator) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		logger:    logger,
		validator: validator,
	}
}

// Parse reads a CAMT.053 document and returns its normalized statements.
//
// Preconditions checked before any field resolution: a Document root with a
// detectable namespace, validator acceptance (the default validator rejects
// namespaces missing from the registry), and a statement container with at
// least one Stmt.
// Any violation aborts the parse with a document-level error and no partial
// output; parsererror.IsDocumentError distinguishes these from I/O failures.
func (p *Parser) Parse(r io.Reader) ([]models.Statement, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	namespace, err := schema.DetectNamespace(doc)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("Detected document namespace",
		logging.Field{Key: logging.FieldNamespace, Value: namespace})

	if err := p.validator.Validate(doc, namespace); err != nil {
		return nil, err
	}

	root, err := xmlutils.ParseDocument(bytes.NewReader(doc))
	if err != nil {
		return nil, &parsererror.ValidationError{Reason: "document is not well-formed XML", Err: err}
	}

	stmts := xmlutils.Nodes(root, "Document", "BkToCstmrStmt", "Stmt")
	if len(stmts) == 0 {
		return nil, &parsererror.MissingElementError{Element: "Stmt"}
	}

	statements := make([]models.Statement, 0, len(stmts))
	for i, stmt := range stmts {
		statements = append(statements, p.resolveStatement(i+1, stmt))
	}

	p.logger.Info("Extracted statements from CAMT.053 document",
		logging.Field{Key: logging.FieldStatements, Value: len(statements)})
	return statements, nil
}

// ParseFile parses the CAMT.053 document at the given path.
func (p *Parser) ParseFile(xmlFilePath string) ([]models.Statement, error) {
	p.logger.Info("Parsing CAMT.053 XML file",
		logging.Field{Key: logging.FieldFile, Value: xmlFilePath})

	file, err := os.Open(xmlFilePath) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close XML file")
		}
	}()

	return p.Parse(file)
}
