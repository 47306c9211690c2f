package calculator

import "errors"

// Sentinel errors for calculation requests. Every rejected request maps to
// exactly one of these; callers dispatch on them with errors.Is.
var (
	// ErrMissingData is returned when an operand or the operation selector
	// is absent or empty. A present operand equal to zero is not missing.
	ErrMissingData = errors.New("missing data")

	// ErrInvalidNumber is returned when an operand cannot be parsed as a
	// floating-point number.
	ErrInvalidNumber = errors.New("invalid numeric input")

	// ErrInvalidOperation is returned when the operation selector is not
	// one of add, subtract, multiply, divide.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrDivisionByZero is returned for divide requests whose second
	// operand is zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Error kind identifiers used in events and HTTP error payloads.
const (
	KindMissingData      = "missing_data"
	KindInvalidNumber    = "invalid_number"
	KindInvalidOperation = "invalid_operation"
	KindDivisionByZero   = "division_by_zero"
	KindInternal         = "internal_error"
)

// ErrorKind maps a calculation error to its wire classification.
// Unrecognized errors are classified as internal.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingData):
		return KindMissingData
	case errors.Is(err, ErrInvalidNumber):
		return KindInvalidNumber
	case errors.Is(err, ErrInvalidOperation):
		return KindInvalidOperation
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	}
	return KindInternal
}
