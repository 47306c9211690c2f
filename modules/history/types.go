package history

import "time"

// Record is one retained calculation, successful or rejected.
type Record struct {
	ID         string    `json:"id,omitempty"`
	Num1       float64   `json:"num1,omitempty"`
	Num2       float64   `json:"num2,omitempty"`
	Operation  string    `json:"operation,omitempty"`
	Result     float64   `json:"result,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Succeeded reports whether the record describes a completed calculation.
func (r Record) Succeeded() bool {
	return r.ErrorKind == ""
}

// Summary aggregates counters across all observed calculations.
type Summary struct {
	TotalPerformed int64            `json:"total_performed"`
	TotalFailed    int64            `json:"total_failed"`
	ByOperation    map[string]int64 `json:"by_operation"`
	ByErrorKind    map[string]int64 `json:"by_error_kind"`
	RecordsHeld    int              `json:"records_held"`
}

// HistoryRequest is the request payload for the get-history service.
type HistoryRequest struct {
	Limit int `json:"limit"`
}
