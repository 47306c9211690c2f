package api

import (
	"encoding/json"
	"time"
)

// CalculateRequest is the HTTP request body for POST /api/v1/calculate.
// Operands are raw JSON so that clients may send them either as numbers
// or as strings, and so that an absent field is distinguishable from a
// present zero.
type CalculateRequest struct {
	Num1      *json.RawMessage `json:"num1"`
	Num2      *json.RawMessage `json:"num2"`
	Operation *string          `json:"operation"`
}

// CalculateResponse is the HTTP response for a successful calculation.
type CalculateResponse struct {
	ID         string    `json:"id"`
	Num1       float64   `json:"num1"`
	Num2       float64   `json:"num2"`
	Operation  string    `json:"operation"`
	Result     float64   `json:"result"`
	ComputedAt time.Time `json:"computed_at"`
}

// OperationsResponse lists the supported operation selectors.
type OperationsResponse struct {
	Operations []string `json:"operations"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// rawOperand converts a raw JSON operand into the string form the
// calculator module validates. A nil or JSON-null field stays absent.
// String literals are unquoted; any other JSON token is passed through
// verbatim so numeric literals parse and everything else is rejected as
// non-numeric downstream.
func rawOperand(raw *json.RawMessage) *string {
	if raw == nil {
		return nil
	}

	text := string(*raw)
	if text == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(*raw, &s); err == nil {
		return &s
	}

	return &text
}
