package camtparser

import (
	"strings"

	"gopkg.in/xmlpath.v2"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/fallback"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/models"
	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/xmlutils"
)

// detailSource tags the source of one output transaction: either a TxDtls
// block of the entry, or the entry itself when it carries no details. The
// nil detail marker lets batch and non-batch entries share one code path;
// every accessor tolerates the nil node and degrades to absent.
type detailSource struct {
	entry  *xmlpath.Node
	detail *xmlpath.Node
}

// entryBaseline holds the entry-level values a transaction detail falls
// back to when it omits its own.
type entryBaseline struct {
	date      string
	amount    *models.Amount
	direction string
	currency  string
}

// flattenEntry produces one normalized transaction per transaction-detail
// block, or exactly one from the entry itself when no details exist. Source
// order of details is preserved.
func flattenEntry(ctx statementContext, entry *xmlpath.Node) []models.Transaction {
	baseline := resolveBaseline(ctx, entry)

	details := xmlutils.Nodes(entry, "NtryDtls", "TxDtls")
	sources := make([]detailSource, 0, max(1, len(details)))
	if len(details) == 0 {
		sources = append(sources, detailSource{entry: entry})
	} else {
		for _, detail := range details {
			sources = append(sources, detailSource{entry: entry, detail: detail})
		}
	}

	transactions := make([]models.Transaction, 0, len(sources))
	for _, src := range sources {
		transactions = append(transactions, resolveTransaction(ctx, baseline, src))
	}
	return transactions
}

// resolveBaseline computes the entry-level fallback values. The entry
// amount's own currency attribute is consulted only when the statement
// currency is empty.
func resolveBaseline(ctx statementContext, entry *xmlpath.Node) entryBaseline {
	b := entryBaseline{
		date:      xmlutils.Date(entry, "BookgDt"),
		direction: models.DirectionFromCode(xmlutils.Text(entry, "CdtDbtInd")),
		currency:  ctx.currency,
	}
	if a, ok := xmlutils.Amount(entry, "Amt"); ok {
		wrapped := models.NewAmount(a)
		b.amount = &wrapped
	}
	if b.currency == "" {
		b.currency = xmlutils.Text(entry, "Amt", "@Ccy")
	}
	return b
}

// resolveTransaction resolves all fields of one transaction. Field failures
// degrade to absent independently; nothing here can abort the entry.
func resolveTransaction(ctx statementContext, baseline entryBaseline, src detailSource) models.Transaction {
	entry, detail := src.entry, src.detail

	tx := models.Transaction{
		Date:      fallback.First(xmlutils.Date(detail, "BookgDt"), baseline.date),
		Direction: baseline.direction,
		Currency: fallback.First(
			xmlutils.Text(detail, "Ccy"),
			xmlutils.Text(detail, "Amt", "@Ccy"),
			baseline.currency,
		),
		EndToEndReference: fallback.First(
			xmlutils.Text(detail, "Refs", "EndToEndId"),
			xmlutils.Text(detail, "Refs", "ClrSysRef"),
			xmlutils.Text(detail, "Refs", "Prtry", "Ref"),
			xmlutils.Text(entry, "NtryRef"),
		),
		RemittanceReference: fallback.First(
			xmlutils.Text(detail, "RmtInf", "Strd", "CdtrRefInf", "Ref"),
			xmlutils.Text(detail, "RmtInf", "Strd", "RfrdDocInf", "Nb"),
			xmlutils.Text(detail, "RmtInf", "Strd", "RfrdDocInf", "Tp", "CdOrPrtry", "Cd"),
		),
		Purpose: xmlutils.Text(detail, "Purp", "Cd"),
	}

	if a, ok := xmlutils.Amount(detail, "Amt"); ok {
		wrapped := models.NewAmount(a)
		tx.Amount = &wrapped
	} else {
		tx.Amount = baseline.amount
	}

	tx.CounterpartyName, tx.CounterpartyAccount = resolveCounterparty(src, baseline.direction)
	tx.Description, tx.DescriptionAdditional = resolveDescription(ctx, entry, detail)

	return tx
}

// resolveCounterparty picks the direction-dependent party: the debtor side
// for incoming credit, the creditor side for outgoing debit. When the party
// lookup yields nothing for a real detail block, reference fields stand in;
// an entry without details keeps its counterparty absent.
func resolveCounterparty(src detailSource, direction string) (name, account string) {
	entry, detail := src.entry, src.detail

	switch direction {
	case models.TransactionTypeCredit:
		name = fallback.First(
			xmlutils.Text(detail, "RltdPties", "Dbtr", "Nm"),
			xmlutils.Text(detail, "RltdPties", "Dbtr", "Pty", "Nm"),
		)
		account = fallback.First(
			xmlutils.Text(detail, "RltdPties", "DbtrAcct", "Id", "IBAN"),
			xmlutils.Text(detail, "RltdPties", "DbtrAcct", "Id", "Othr", "Id"),
		)
	case models.TransactionTypeDebit:
		name = fallback.First(
			xmlutils.Text(detail, "RltdPties", "Cdtr", "Nm"),
			xmlutils.Text(detail, "RltdPties", "Cdtr", "Pty", "Nm"),
		)
		account = fallback.First(
			xmlutils.Text(detail, "RltdPties", "CdtrAcct", "Id", "IBAN"),
			xmlutils.Text(detail, "RltdPties", "CdtrAcct", "Id", "Othr", "Id"),
		)
	}

	if detail == nil {
		return name, account
	}

	if name == "" {
		name = fallback.First(
			xmlutils.Text(entry, "AcctSvcrRef"),
			xmlutils.Text(entry, "NtryRef"),
			xmlutils.Text(detail, "Refs", "Prtry", "Ref"),
		)
	}
	if account == "" {
		account = fallback.First(
			xmlutils.Text(detail, "Refs", "Prtry", "Ref"),
			xmlutils.Text(entry, "NtryRef"),
		)
	}
	return name, account
}

// resolveDescription builds the ordered text candidate list and splits it:
// the first surviving candidate becomes the description, the rest join into
// the overflow field. When no candidate survives, a single reference-based
// candidate takes its place.
func resolveDescription(ctx statementContext, entry, detail *xmlpath.Node) (description, additional string) {
	var candidates []string
	for _, ustrd := range xmlutils.Nodes(detail, "RmtInf", "Ustrd") {
		candidates = append(candidates, strings.TrimSpace(ustrd.String()))
	}
	candidates = append(candidates,
		xmlutils.Text(detail, "RmtInf", "Strd", "AddtlRmtInf"),
		xmlutils.Text(entry, "AddtlNtryInf"),
		xmlutils.Text(detail, "AddtlTxInf"),
	)

	texts := fallback.Texts(candidates...)
	if len(texts) == 0 {
		texts = fallback.Texts(fallback.First(
			xmlutils.Text(entry, "AcctSvcrRef"),
			xmlutils.Text(detail, "Refs", "InstrId"),
			ctx.id,
		))
	}
	if len(texts) == 0 {
		return "", ""
	}
	return texts[0], strings.Join(texts[1:], models.DescriptionSeparator)
}
