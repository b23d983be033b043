package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldExpenseID   = "id"
	FieldCategory    = "category"
	FieldAmountCents = "amount_cents"
	FieldKey         = "key"
	FieldBackend     = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentLedger  = "ledger"
	ComponentTUI     = "tui"
	ComponentCommand = "command"
)
