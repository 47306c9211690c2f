package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// CalculationPerformedEvent is emitted after a request was validated and
// computed successfully.
type CalculationPerformedEvent struct {
	ID         string    `json:"id"`
	Num1       float64   `json:"num1"`
	Num2       float64   `json:"num2"`
	Operation  string    `json:"operation"`
	Result     float64   `json:"result"`
	ComputedAt time.Time `json:"computed_at"`
}

// CalculationPerformedV1 is the typed event definition for successful calculations.
// Subject: events.calculator.v1.calculation-performed
var CalculationPerformedV1 = helper.EventDefinition[CalculationPerformedEvent](
	"calculator", "CalculationPerformed", "v1",
)

// CalculationFailedEvent is emitted when a request is rejected by validation.
// Kind carries the error classification, not the human-readable message.
type CalculationFailedEvent struct {
	Operation string    `json:"operation,omitempty"`
	Kind      string    `json:"kind"`
	FailedAt  time.Time `json:"failed_at"`
}

// CalculationFailedV1 is the typed event definition for rejected calculations.
// Subject: events.calculator.v1.calculation-failed
var CalculationFailedV1 = helper.EventDefinition[CalculationFailedEvent](
	"calculator", "CalculationFailed", "v1",
)
