package calculator

import "time"

// CalculateRequest is the request payload for the calculate service.
// Operand and operation fields are pointers so that an absent field can be
// told apart from a present zero or empty value after JSON decoding.
type CalculateRequest struct {
	Num1      *string `json:"num1"`
	Num2      *string `json:"num2"`
	Operation *string `json:"operation"`
}

// CalculateResponse is the response after a successful calculation.
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
