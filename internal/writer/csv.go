package writer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/darko-mijic/iso-20022-camt-053-parser/internal/models"
)

// Delimiter is the CSV field separator, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// csvRow is one flattened transaction with its statement context repeated,
// so the CSV stands alone without the enclosing statement objects.
type csvRow struct {
	Statement           string `csv:"Statement"`
	Account             string `csv:"Account"`
	Date                string `csv:"Date"`
	Amount              string `csv:"Amount"`
	Currency            string `csv:"Currency"`
	Direction           string `csv:"Direction"`
	CounterpartyName    string `csv:"CounterpartyName"`
	CounterpartyAccount string `csv:"CounterpartyAccount"`
	Description         string `csv:"Description"`
	DescriptionExtra    string `csv:"DescriptionAdditional"`
	EndToEndReference   string `csv:"EndToEndReference"`
	RemittanceReference string `csv:"RemittanceReference"`
	Purpose             string `csv:"Purpose"`
}

// WriteCSV writes one row per transaction, preserving statement and
// transaction order. Amounts keep their source precision.
func WriteCSV(statements []models.Statement, w io.Writer) error {
	rows := make([]csvRow, 0)
	for _, stmt := range statements {
		for _, tx := range stmt.Transactions {
			row := csvRow{
				Statement:           stmt.Title,
				Account:             stmt.AccountIdentifier,
				Date:                tx.Date,
				Currency:            tx.Currency,
				Direction:           tx.Direction,
				CounterpartyName:    tx.CounterpartyName,
				CounterpartyAccount: tx.CounterpartyAccount,
				Description:         tx.Description,
				DescriptionExtra:    tx.DescriptionAdditional,
				EndToEndReference:   tx.EndToEndReference,
				RemittanceReference: tx.RemittanceReference,
				Purpose:             tx.Purpose,
			}
			if tx.Amount != nil {
				row.Amount = tx.Amount.String()
			}
			rows = append(rows, row)
		}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
