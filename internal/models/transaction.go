package models

// Transaction is one normalized posting line: either a whole entry or one
// leaf of a batch entry. Direction always comes from the entry-level
// indicator; the remaining fields are resolved per the engine's fallback
// tables, degrading independently to absent.
type Transaction struct {
	Date                  string  `json:"date" yaml:"date"`
	Amount                *Amount `json:"amount,omitempty" yaml:"amount,omitempty"`
	Currency              string  `json:"currency,omitempty" yaml:"currency,omitempty"`
	Direction             string  `json:"direction" yaml:"direction"`
	CounterpartyName      string  `json:"counterpartyName,omitempty" yaml:"counterpartyName,omitempty"`
	CounterpartyAccount   string  `json:"counterpartyAccount,omitempty" yaml:"counterpartyAccount,omitempty"`
	Description           string  `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionAdditional string  `json:"descriptionAdditional,omitempty" yaml:"descriptionAdditional,omitempty"`
	EndToEndReference     string  `json:"endToEndReference,omitempty" yaml:"endToEndReference,omitempty"`
	RemittanceReference   string  `json:"remittanceReference,omitempty" yaml:"remittanceReference,omitempty"`
	Purpose               string  `json:"purpose,omitempty" yaml:"purpose,omitempty"`
}

// IsCredit reports whether the transaction is incoming money.
func (t *Transaction) IsCredit() bool {
	return t.Direction == TransactionTypeCredit
}

// IsDebit reports whether the transaction is outgoing money.
func (t *Transaction) IsDebit() bool {
	return t.Direction == TransactionTypeDebit
}
