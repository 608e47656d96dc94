package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/currencyutils"
)

// Amount is a decimal that keeps the source's declared precision through
// serialization. decimal.Decimal trims trailing zeros in String and
// MarshalJSON, so "100.00" would come out as "100"; the stored exponent
// recovers the declared scale.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a parsed decimal.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{d}
}

func (a Amount) String() string {
	return currencyutils.FormatPrecise(a.Decimal)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
