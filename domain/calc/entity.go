package calc

import "time"

// Operation identifies one of the four supported arithmetic functions.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists the supported operation selectors in a stable order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Calculation is the core domain entity representing one completed
// arithmetic request. It only lives for the duration of a call plus
// whatever the history module retains of it.
type Calculation struct {
	ID         string    `json:"id"`
	Num1       float64   `json:"num1"`
	Num2       float64   `json:"num2"`
	Operation  Operation `json:"operation"`
	Result     float64   `json:"result"`
	ComputedAt time.Time `json:"computed_at"`
}
