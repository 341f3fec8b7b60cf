package model

type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)

// Message codes surfaced to callers.
const (
	CodeInvalidRequestBody    = "INVALID_REQUEST_BODY"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeInvalidStructure      = "INVALID_STRUCTURE"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodeDivisionMismatch      = "DIVISION_MISMATCH"
	CodeUnknownHeir           = "UNKNOWN_HEIR"
	CodeInvalidRoundingPolicy = "INVALID_ROUNDING_POLICY"
	CodeInvalidDivisionMode   = "INVALID_DIVISION_MODE"
	CodeUnknownOperation      = "UNKNOWN_OPERATION"
	CodeNoTaxDue              = "NO_TAX_DUE"
	CodeInternalError         = "INTERNAL_ERROR"
)
