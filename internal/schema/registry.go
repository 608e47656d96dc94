// Package schema handles the preconditions of a parse: mapping a document's
// declared namespace to a known schema and validating the document before
// any field resolution happens.
package schema

import "sort"

// schemaByNamespace is the static lookup table from supported CAMT.053
// namespaces to their schema resources. Unsupported namespaces are a fatal
// precondition failure, not a degradable one.
var schemaByNamespace = map[string]string{
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.02": "camt.053.001.02.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.03": "camt.053.001.03.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.04": "camt.053.001.04.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.05": "camt.053.001.05.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.06": "camt.053.001.06.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.07": "camt.053.001.07.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.08": "camt.053.001.08.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.09": "camt.053.001.09.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.10": "camt.053.001.10.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.11": "camt.053.001.11.xsd",
	"urn:iso:std:iso:20022:tech:xsd:camt.053.001.12": "camt.053.001.12.xsd",
}

// Lookup returns the schema resource for a namespace and whether the
// namespace is supported.
func Lookup(namespace string) (string, bool) {
	resource, ok := schemaByNamespace[namespace]
	return resource, ok
}

// Namespaces returns the supported namespaces in sorted order.
func Namespaces() []string {
	namespaces := make([]string, 0, len(schemaByNamespace))
	for ns := range schemaByNamespace {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces
}
