package schema

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/parsererror"
)

// Validator checks a raw document against the schema identified by its
// declared namespace. Implementations return a document-level error on
// failure; the engine treats any failure as fatal for the whole document.
type Validator interface {
	Validate(doc []byte, namespace string) error
}

// newDecoder builds an XML decoder tolerant of non-UTF-8 declarations;
// banks still ship ISO-8859 statement files.
func newDecoder(r io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

// DetectNamespace reads the root element of the document and returns its
// declared namespace. The root element must be the CAMT Document wrapper.
func DetectNamespace(doc []byte) (string, error) {
	decoder := newDecoder(bytes.NewReader(doc))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return "", &parsererror.ValidationError{Reason: "document has no root element"}
		}
		if err != nil {
			return "", &parsererror.ValidationError{Reason: "document is not well-formed XML", Err: err}
		}
		if start, ok := token.(xml.StartElement); ok {
			if start.Name.Local != "Document" {
				return "", &parsererror.ValidationError{
					Reason: fmt.Sprintf("unexpected root element <%s>, want <Document>", start.Name.Local),
				}
			}
			return start.Name.Space, nil
		}
	}
}

// StructuralValidator is the default Validator. It enforces the parse
// preconditions without a full XSD processor: the namespace must be
// supported, the document must be well-formed end to end, and the statement
// container must be present.
type StructuralValidator struct {
	// AllowUnknownNamespace skips the registry check so documents in
	// schema releases newer than the registry still parse. Set from the
	// parser.strict_validation config key.
	AllowUnknownNamespace bool
}

// NewStructuralValidator returns the default document validator.
func NewStructuralValidator() *StructuralValidator {
	return &StructuralValidator{}
}

// Validate implements Validator.
func (v *StructuralValidator) Validate(doc []byte, namespace string) error {
	if !v.AllowUnknownNamespace {
		if _, ok := Lookup(namespace); !ok {
			return &parsererror.UnsupportedNamespaceError{Namespace: namespace}
		}
	}

	decoder := newDecoder(bytes.NewReader(doc))
	sawContainer := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &parsererror.ValidationError{Reason: "document is not well-formed XML", Err: err}
		}
		if start, ok := token.(xml.StartElement); ok && start.Name.Local == "BkToCstmrStmt" {
			sawContainer = true
		}
	}

	if !sawContainer {
		return &parsererror.MissingElementError{Element: "BkToCstmrStmt"}
	}
	return nil
}
