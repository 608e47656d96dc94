package xmlutils

import (
	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/currencyutils"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/dateutils"
)

// Date extracts an ISO calendar date from the node at the given path.
// CAMT date elements are either a bare string or a choice wrapper holding a
// Dt or DtTm child; the Dt child is preferred, then DtTm, then the node's
// own text. Returns "" when no date pattern is found anywhere in the chain.
func Date(root *xmlpath.Node, steps ...string) string {
	n, ok := Node(root, steps...)
	if !ok {
		return ""
	}
	if d := Text(n, "Dt"); d != "" {
		return dateutils.ExtractISODate(d)
	}
	if d := Text(n, "DtTm"); d != "" {
		return dateutils.ExtractISODate(d)
	}
	return dateutils.ExtractISODate(n.String())
}

// Amount parses the node at the given path as a decimal amount. The node may
// be a bare numeric string or a value-holder with a currency attribute; the
// attribute is ignored here. Absent paths and unparsable text both report
// ok=false, never an error.
func Amount(root *xmlpath.Node, steps ...string) (decimal.Decimal, bool) {
	n, ok := Node(root, steps...)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := currencyutils.ParseAmount(n.String())
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
