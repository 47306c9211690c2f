package calculator

import (
	"errors"
	"testing"

	domain "github.com/example/calculator-service/domain/calc"
)

func strPtr(s string) *string {
	return &s
}

func newRequest(num1, num2, op *string) CalculateRequest {
	return CalculateRequest{Num1: num1, Num2: num2, Operation: op}
}

func TestService_Calculate_Operations(t *testing.T) {
	service := NewService()

	tests := []struct {
		name      string
		num1      string
		num2      string
		operation string
		want      float64
	}{
		{name: "add integers", num1: "10", num2: "5", operation: "add", want: 15},
		{name: "add negative", num1: "-3", num2: "5", operation: "add", want: 2},
		{name: "subtract", num1: "10", num2: "5", operation: "subtract", want: 5},
		{name: "subtract below zero", num1: "5", num2: "10", operation: "subtract", want: -5},
		{name: "multiply", num1: "10", num2: "5", operation: "multiply", want: 50},
		{name: "multiply by zero", num1: "10", num2: "0", operation: "multiply", want: 0},
		{name: "divide", num1: "10", num2: "5", operation: "divide", want: 2},
		{name: "divide to fraction", num1: "1", num2: "4", operation: "divide", want: 0.25},
		{name: "float operands", num1: "2.5", num2: "1.5", operation: "add", want: 4},
		{name: "scientific notation", num1: "1e3", num2: "2", operation: "multiply", want: 2000},
		{name: "zero operand is present, not missing", num1: "0", num2: "5", operation: "add", want: 5},
		{name: "operands with surrounding whitespace", num1: " 10 ", num2: "5", operation: "add", want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Calculate(newRequest(strPtr(tt.num1), strPtr(tt.num2), strPtr(tt.operation)))
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if result.Result != tt.want {
				t.Errorf("Calculate() result = %v, want %v", result.Result, tt.want)
			}
			if result.ID == "" {
				t.Error("expected non-empty calculation ID")
			}
			if result.ComputedAt.IsZero() {
				t.Error("expected ComputedAt to be set")
			}
		})
	}
}

func TestService_Calculate_ValidationOrder(t *testing.T) {
	service := NewService()

	tests := []struct {
		name    string
		req     CalculateRequest
		wantErr error
	}{
		{
			name:    "all fields absent",
			req:     newRequest(nil, nil, nil),
			wantErr: ErrMissingData,
		},
		{
			name:    "num1 absent",
			req:     newRequest(nil, strPtr("5"), strPtr("add")),
			wantErr: ErrMissingData,
		},
		{
			name:    "num2 absent",
			req:     newRequest(strPtr("10"), nil, strPtr("add")),
			wantErr: ErrMissingData,
		},
		{
			name:    "operation absent",
			req:     newRequest(strPtr("10"), strPtr("5"), nil),
			wantErr: ErrMissingData,
		},
		{
			name:    "empty operand counts as missing",
			req:     newRequest(strPtr(""), strPtr("5"), strPtr("add")),
			wantErr: ErrMissingData,
		},
		{
			name:    "empty operation counts as missing",
			req:     newRequest(strPtr("10"), strPtr("5"), strPtr("  ")),
			wantErr: ErrMissingData,
		},
		{
			// Missing-data check runs before any parsing is attempted.
			name:    "missing field wins over non-numeric operand",
			req:     newRequest(nil, strPtr("abc"), strPtr("modulo")),
			wantErr: ErrMissingData,
		},
		{
			name:    "non-numeric num1",
			req:     newRequest(strPtr("abc"), strPtr("5"), strPtr("add")),
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "non-numeric num2",
			req:     newRequest(strPtr("10"), strPtr("x"), strPtr("divide")),
			wantErr: ErrInvalidNumber,
		},
		{
			// Operand parsing runs before the operation selector is checked.
			name:    "non-numeric operand wins over unknown operation",
			req:     newRequest(strPtr("abc"), strPtr("5"), strPtr("modulo")),
			wantErr: ErrInvalidNumber,
		},
		{
			name:    "unknown operation",
			req:     newRequest(strPtr("10"), strPtr("5"), strPtr("modulo")),
			wantErr: ErrInvalidOperation,
		},
		{
			// Operation check runs before the zero-denominator check.
			name:    "unknown operation wins over zero denominator",
			req:     newRequest(strPtr("10"), strPtr("0"), strPtr("power")),
			wantErr: ErrInvalidOperation,
		},
		{
			name:    "operation selectors are case sensitive",
			req:     newRequest(strPtr("10"), strPtr("5"), strPtr("Add")),
			wantErr: ErrInvalidOperation,
		},
		{
			name:    "division by zero",
			req:     newRequest(strPtr("10"), strPtr("0"), strPtr("divide")),
			wantErr: ErrDivisionByZero,
		},
		{
			name:    "division by zero regardless of numerator",
			req:     newRequest(strPtr("0"), strPtr("0"), strPtr("divide")),
			wantErr: ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Calculate(tt.req)
			if err == nil {
				t.Fatal("Calculate() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Calculate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_Calculate_Idempotent(t *testing.T) {
	service := NewService()
	req := newRequest(strPtr("7.5"), strPtr("2.5"), strPtr("divide"))

	first, err := service.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := service.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if first.Result != second.Result {
		t.Errorf("results differ between identical calls: %v vs %v", first.Result, second.Result)
	}
	if first.Operation != second.Operation {
		t.Errorf("operations differ between identical calls: %v vs %v", first.Operation, second.Operation)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		op      domain.Operation
		a, b    float64
		want    float64
		wantErr error
	}{
		{name: "add", op: domain.OpAdd, a: 1.5, b: 2.5, want: 4},
		{name: "subtract", op: domain.OpSubtract, a: 1, b: 2, want: -1},
		{name: "multiply", op: domain.OpMultiply, a: -4, b: 2.5, want: -10},
		{name: "divide", op: domain.OpDivide, a: 9, b: 3, want: 3},
		{name: "divide by zero", op: domain.OpDivide, a: 9, b: 0, wantErr: ErrDivisionByZero},
		{name: "unknown operation", op: domain.Operation("modulo"), a: 9, b: 3, wantErr: ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.op, tt.a, tt.b)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evaluate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}
