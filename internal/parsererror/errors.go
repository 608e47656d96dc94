// Package parsererror defines the error taxonomy of the extraction engine.
//
// Document-level errors abort the whole parse and are distinguishable from
// generic errors via IsDocumentError. Field-level degradations never become
// errors at all: an unresolved field is simply absent from the output.
package parsererror

import (
	"errors"
	"fmt"
)

// UnsupportedNamespaceError reports a document whose declared namespace is
// not in the schema registry.
type UnsupportedNamespaceError struct {
	Namespace string
}

func (e *UnsupportedNamespaceError) Error() string {
	if e.Namespace == "" {
		return "document declares no CAMT.053 namespace"
	}
	return fmt.Sprintf("unsupported document namespace: %s", e.Namespace)
}

// ValidationError reports a schema or structural validation failure.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("document validation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("document validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MissingElementError reports a required container element that is absent
// from an otherwise well-formed document.
type MissingElementError struct {
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("required element missing from document: %s", e.Element)
}

// ParseError reports a low-level read or decode failure.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsDocumentError reports whether err is one of the fatal document-level
// error types. Callers use this to tell a rejected document apart from an
// unexpected failure.
func IsDocumentError(err error) bool {
	var nsErr *UnsupportedNamespaceError
	var valErr *ValidationError
	var missErr *MissingElementError
	return errors.As(err, &nsErr) || errors.As(err, &valErr) || errors.As(err, &missErr)
}
