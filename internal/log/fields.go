package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldID          = "id"
	FieldAccountID   = "account_id"
	FieldCardID      = "card_id"
	FieldCategoryID  = "category_id"
	FieldKind        = "kind"
	FieldAmountCents = "amount_cents"
	FieldDate        = "date"
	FieldMonth       = "month"
	FieldGroup       = "installment_group"
	FieldCount       = "count"
	FieldDBPath      = "db_path"
	FieldVersion     = "schema_version"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentCLI        = "cli"
	ComponentStorage    = "storage"
	ComponentJournal    = "journal"
	ComponentInvoice    = "invoice"
	ComponentAggregator = "aggregator"
	ComponentBudget     = "budget"
	ComponentCatalog    = "catalog"
	ComponentInvestment = "investment"
)

// Operations defines standard operation names
const (
	OpCreate     = "create"
	OpUpdate     = "update"
	OpDelete     = "delete"
	OpArchive    = "archive"
	OpPayInvoice = "pay_invoice"
	OpPayPlanned = "pay_planned"
	OpMigrate    = "migrate"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeConflict      = "conflict_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithEntry adds the identifying fields of a ledger entry
func (f LogFields) WithEntry(id int64, kind string, amountCents int64, date string) LogFields {
	f[FieldID] = id
	f[FieldKind] = kind
	f[FieldAmountCents] = amountCents
	f[FieldDate] = date
	return f
}

// With adds an arbitrary field
func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
