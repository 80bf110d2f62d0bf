package levels

import "fmt"

// Validation error codes.
const (
	CodeEmptyMap         = "EMPTY_MAP"
	CodeBadSize          = "BAD_SIZE"
	CodeNotSquare        = "NOT_SQUARE"
	CodeDuplicateLevel   = "DUPLICATE_LEVEL"
	CodeMissingID        = "MISSING_ID"
	CodeUnknownStart     = "UNKNOWN_START"
	CodeUnknownNeighbor  = "UNKNOWN_NEIGHBOR"
	CodeBadBound         = "BAD_BOUND"
	CodeBadCoord         = "BAD_COORD"
	CodeEntityOutOfRange = "ENTITY_OUT_OF_BOUNDS"
	CodeEntityOverlap    = "ENTITY_OVERLAP"
	CodeUnknownItem      = "UNKNOWN_ITEM"
	CodeBadColor         = "BAD_COLOR"
	CodeNoScripts        = "NO_SCRIPTS"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
