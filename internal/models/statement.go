// Package models provides the normalized data structures produced by the
// extraction engine.
package models

// Statement is one account-period report extracted from a CAMT.053 document.
// Optional fields are pointers so that unresolved values serialize as
// null/absent; Currency is deliberately a plain string because downstream
// consumers key on it, so empty is its floor, never null.
type Statement struct {
	Title             string        `json:"title" yaml:"title"`
	AccountHolder     string        `json:"accountHolder,omitempty" yaml:"accountHolder,omitempty"`
	AccountIdentifier string        `json:"accountIdentifier,omitempty" yaml:"accountIdentifier,omitempty"`
	Currency          string        `json:"currency" yaml:"currency"`
	SequenceNumber    *int          `json:"sequenceNumber,omitempty" yaml:"sequenceNumber,omitempty"`
	StatementDate     string        `json:"statementDate" yaml:"statementDate"`
	OpeningBalance    *Amount       `json:"openingBalance,omitempty" yaml:"openingBalance,omitempty"`
	ClosingBalance    *Amount       `json:"closingBalance,omitempty" yaml:"closingBalance,omitempty"`
	CreditSummary     *EntrySummary `json:"creditSummary,omitempty" yaml:"creditSummary,omitempty"`
	DebitSummary      *EntrySummary `json:"debitSummary,omitempty" yaml:"debitSummary,omitempty"`
	Transactions      []Transaction `json:"transactions" yaml:"transactions"`
}

// EntrySummary is the (count, total) pair of a statement's credit or debit
// transaction summary block.
type EntrySummary struct {
	Count int    `json:"count" yaml:"count"`
	Total Amount `json:"total" yaml:"total"`
}
