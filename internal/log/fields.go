package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldCount     = "count"
	FieldExpenseID = "expense_id"
	FieldCategory  = "category"
	FieldMonth     = "month"
	FieldAmount    = "amount"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentMenu    = "menu"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentSeed    = "seed"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpSave    = "save"
	OpReset   = "reset"
	OpAppend  = "append"
	OpList    = "list"
	OpSummary = "summary"
	OpStartup = "startup"
)
