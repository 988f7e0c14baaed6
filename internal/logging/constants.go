package logging

// Standardized field names for structured logging.
// Keep these stable: log processors filter on them.
const (
	FieldFile          = "file_path"
	FieldQueryID       = "query_id"
	FieldReferenceCode = "reference_code"
	FieldAccountID     = "account_id"
	FieldPhase         = "phase"
	FieldAttempt       = "attempt"
	FieldMaxAttempts   = "max_attempts"
	FieldErrorCode     = "error_code"
	FieldDuration      = "duration_ms"
	FieldCount         = "count"
	FieldRecord        = "record"
	FieldAttribute     = "attribute"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
)
