package logging

// Standardized field names for structured logging. Keeping these as
// constants makes log output consistent and easy to filter.
const (
	FieldFile         = "file_path"
	FieldNamespace    = "namespace"
	FieldStatement    = "statement"
	FieldStatements   = "statement_count"
	FieldEntries      = "entry_count"
	FieldTransactions = "transaction_count"
	FieldFormat       = "format"
	FieldInputFile    = "input_file"
	FieldOutputFile   = "output_file"
)
