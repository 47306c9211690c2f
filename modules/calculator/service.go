package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	domain "github.com/example/calculator-service/domain/calc"
	"github.com/google/uuid"
)

// Service validates calculation requests and dispatches them to the
// arithmetic evaluator. It holds no state; every call is independent.
type Service struct{}

// NewService creates a new calculator service.
func NewService() *Service {
	return &Service{}
}

// Calculate validates req and computes its result.
//
// Validation order is part of the contract and determines which error is
// reported when several conditions hold at once:
//
//  1. absent or empty field        -> ErrMissingData
//  2. operand not parseable        -> ErrInvalidNumber
//  3. unknown operation selector   -> ErrInvalidOperation
//  4. divide with zero denominator -> ErrDivisionByZero
func (s *Service) Calculate(req CalculateRequest) (*domain.Calculation, error) {
	if isBlank(req.Num1) || isBlank(req.Num2) || isBlank(req.Operation) {
		return nil, fmt.Errorf("%w: num1, num2 and operation are required", ErrMissingData)
	}

	num1, err := parseOperand(*req.Num1)
	if err != nil {
		return nil, err
	}
	num2, err := parseOperand(*req.Num2)
	if err != nil {
		return nil, err
	}

	op := domain.Operation(strings.TrimSpace(*req.Operation))
	result, err := Evaluate(op, num1, num2)
	if err != nil {
		return nil, err
	}

	return &domain.Calculation{
		ID:         uuid.New().String(),
		Num1:       num1,
		Num2:       num2,
		Operation:  op,
		Result:     result,
		ComputedAt: time.Now().UTC(),
	}, nil
}

// Evaluate is the pure arithmetic dispatcher: it maps an already-parsed
// operand pair and operation to a float64 result. Standard float64
// semantics apply; no rounding policy beyond native behavior.
func Evaluate(op domain.Operation, a, b float64) (float64, error) {
	switch op {
	case domain.OpAdd:
		return a + b, nil
	case domain.OpSubtract:
		return a - b, nil
	case domain.OpMultiply:
		return a * b, nil
	case domain.OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %q is not one of add, subtract, multiply, divide", ErrInvalidOperation, op)
	}
}

func isBlank(field *string) bool {
	return field == nil || strings.TrimSpace(*field) == ""
}

func parseOperand(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q cannot be parsed as a number", ErrInvalidNumber, raw)
	}
	return value, nil
}
