package models

// Credit/debit indicator codes
const (
	TransactionTypeCredit = "CRDT"
	TransactionTypeDebit  = "DBIT"
)

// Balance type codes
const (
	BalanceOpeningBooked = "OPBD"
	BalanceClosingBooked = "CLBD"
)

// DescriptionSeparator joins overflow description candidates.
const DescriptionSeparator = " | "

// DirectionFromCode maps a credit/debit indicator to a direction tag.
// Any value other than the two indicator codes yields the unresolved
// direction, which is a valid terminal state rather than an error.
func DirectionFromCode(code string) string {
	switch code {
	case TransactionTypeCredit:
		return TransactionTypeCredit
	case TransactionTypeDebit:
		return TransactionTypeDebit
	default:
		return DirectionUnresolved
	}
}

// DirectionUnresolved marks an entry whose indicator was absent or unknown.
const DirectionUnresolved = ""
