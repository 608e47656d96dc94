package camtparser

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/xmlpath.v2"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/dateutils"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/fallback"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/logging"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/models"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/xmlutils"
)

// statementContext carries the statement-level values entry resolution
// falls back to. It is immutable; no entry can affect another's resolution.
type statementContext struct {
	id       string
	currency string
}

// resolveStatement extracts one normalized statement from a Stmt subtree.
// Ordinals are 1-based in document order and only feed the synthesized title.
func (p *Parser) resolveStatement(ordinal int, stmt *xmlpath.Node) models.Statement {
	currency := xmlutils.Text(stmt, "Acct", "Ccy")

	s := models.Statement{
		Title: statementTitle(ordinal, currency),
		AccountHolder: fallback.First(
			xmlutils.Text(stmt, "Acct", "Ownr", "Nm"),
			xmlutils.Text(stmt, "Acct", "Ownr", "Id", "OrgId", "Othr", "Id"),
		),
		AccountIdentifier: fallback.First(
			xmlutils.Text(stmt, "Acct", "Id", "IBAN"),
			xmlutils.Text(stmt, "Acct", "Id", "Othr", "Id"),
		),
		Currency:       currency,
		SequenceNumber: sequenceNumber(stmt),
		StatementDate:  statementDate(stmt),
		CreditSummary:  resolveSummary(stmt, "TtlCdtNtries"),
		DebitSummary:   resolveSummary(stmt, "TtlDbtNtries"),
	}
	s.OpeningBalance, s.ClosingBalance = resolveBalances(stmt)

	ctx := statementContext{
		id:       xmlutils.Text(stmt, "Id"),
		currency: currency,
	}
	entries := xmlutils.Nodes(stmt, "Ntry")
	transactions := make([]models.Transaction, 0, len(entries))
	for _, entry := range entries {
		transactions = append(transactions, flattenEntry(ctx, entry)...)
	}
	s.Transactions = transactions

	p.logger.Debug("Resolved statement",
		logging.Field{Key: logging.FieldStatement, Value: ordinal},
		logging.Field{Key: logging.FieldEntries, Value: len(entries)},
		logging.Field{Key: logging.FieldTransactions, Value: len(transactions)})

	return s
}

// statementTitle synthesizes the label; it has no source element.
func statementTitle(ordinal int, currency string) string {
	if currency == "" {
		return fmt.Sprintf("Statement #%d", ordinal)
	}
	return fmt.Sprintf("Statement #%d (%s)", ordinal, currency)
}

// sequenceNumber prefers the legal sequence number over the electronic one.
// The winning candidate must parse as an integer or the field stays absent.
func sequenceNumber(stmt *xmlpath.Node) *int {
	raw := fallback.First(
		xmlutils.Text(stmt, "LglSeqNb"),
		xmlutils.Text(stmt, "ElctrncSeqNb"),
	)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

// statementDate resolves the single representative date of the statement:
// period end date-time, period end date, creation date-time, latest balance
// date, earliest booking date over the entries, empty string.
func statementDate(stmt *xmlpath.Node) string {
	return fallback.First(
		dateutils.ExtractISODate(xmlutils.Text(stmt, "FrToDt", "ToDtTm")),
		dateutils.ExtractISODate(xmlutils.Text(stmt, "FrToDt", "ToDt")),
		dateutils.ExtractISODate(xmlutils.Text(stmt, "CreDtTm")),
		latestBalanceDate(stmt),
		earliestBookingDate(stmt),
	)
}

func latestBalanceDate(stmt *xmlpath.Node) string {
	var dates []string
	for _, bal := range xmlutils.Nodes(stmt, "Bal") {
		dates = append(dates, xmlutils.Date(bal, "Dt"))
	}
	return dateutils.Latest(dates)
}

// earliestBookingDate collects transaction-detail booking dates, falling
// back per entry to the entry-level booking date when no detail carries one.
func earliestBookingDate(stmt *xmlpath.Node) string {
	var dates []string
	for _, entry := range xmlutils.Nodes(stmt, "Ntry") {
		var entryDates []string
		for _, detail := range xmlutils.Nodes(entry, "NtryDtls", "TxDtls") {
			if d := xmlutils.Date(detail, "BookgDt"); d != "" {
				entryDates = append(entryDates, d)
			}
		}
		if len(entryDates) == 0 {
			if d := xmlutils.Date(entry, "BookgDt"); d != "" {
				entryDates = append(entryDates, d)
			}
		}
		dates = append(dates, entryDates...)
	}
	return dateutils.Earliest(dates)
}

// resolveBalances assigns the opening/closing pair by balance-type code.
// When a code repeats the later block wins, including a later block whose
// amount fails to parse; duplicate codes are malformed input and the
// behavior only needs to be deterministic.
func resolveBalances(stmt *xmlpath.Node) (opening, closing *models.Amount) {
	for _, bal := range xmlutils.Nodes(stmt, "Bal") {
		var amount *models.Amount
		if a, ok := xmlutils.Amount(bal, "Amt"); ok {
			wrapped := models.NewAmount(a)
			amount = &wrapped
		}
		switch xmlutils.Text(bal, "Tp", "CdOrPrtry", "Cd") {
		case models.BalanceOpeningBooked:
			opening = amount
		case models.BalanceClosingBooked:
			closing = amount
		}
	}
	return opening, closing
}

// resolveSummary reads one side of the transaction summary block. Credit and
// debit sides are independent; either may be present without the other.
func resolveSummary(stmt *xmlpath.Node, side string) *models.EntrySummary {
	node, ok := xmlutils.Node(stmt, "TxsSummry", side)
	if !ok {
		return nil
	}
	summary := &models.EntrySummary{}
	if n, err := strconv.Atoi(strings.TrimSpace(xmlutils.Text(node, "NbOfNtries"))); err == nil {
		summary.Count = n
	}
	if sum, ok := xmlutils.Amount(node, "Sum"); ok {
		summary.Total = models.NewAmount(sum)
	}
	return summary
}
