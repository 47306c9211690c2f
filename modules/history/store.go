package history

import "sync"

// DefaultMaxRecords is the default maximum number of records to retain.
const DefaultMaxRecords = 10000

// Store provides thread-safe, bounded in-memory storage for calculation
// history. Oldest records are dropped once the limit is reached.
type Store struct {
	mu         sync.RWMutex
	records    []Record
	byOp       map[string]int64
	byKind     map[string]int64
	performed  int64
	failed     int64
	maxRecords int
}

// NewStore creates a new history store with the default retention limit.
func NewStore() *Store {
	return NewStoreWithLimit(DefaultMaxRecords)
}

// NewStoreWithLimit creates a new history store with a custom retention limit.
func NewStoreWithLimit(maxRecords int) *Store {
	if maxRecords <= 0 {
		maxRecords = DefaultMaxRecords
	}
	return &Store{
		records:    make([]Record, 0),
		byOp:       make(map[string]int64),
		byKind:     make(map[string]int64),
		maxRecords: maxRecords,
	}
}

// RecordPerformed records a completed calculation.
func (s *Store) RecordPerformed(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.performed++
	s.byOp[rec.Operation]++
	s.append(rec)
}

// RecordFailed records a rejected calculation.
func (s *Store) RecordFailed(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failed++
	s.byKind[rec.ErrorKind]++
	s.append(rec)
}

// append adds a record, dropping oldest entries past the retention limit.
// Callers must hold the write lock.
func (s *Store) append(rec Record) {
	s.records = append(s.records, rec)
	if len(s.records) > s.maxRecords {
		excess := len(s.records) - s.maxRecords
		s.records = s.records[excess:]
	}
}

// Recent returns up to limit of the most recent records, oldest first.
func (s *Store) Recent(limit int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return nil
	}

	start := 0
	if limit > 0 && len(s.records) > limit {
		start = len(s.records) - limit
	}

	result := make([]Record, len(s.records)-start)
	copy(result, s.records[start:])
	return result
}

// GetSummary returns aggregate counters across all observed calculations.
func (s *Store) GetSummary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byOp := make(map[string]int64, len(s.byOp))
	for op, n := range s.byOp {
		byOp[op] = n
	}
	byKind := make(map[string]int64, len(s.byKind))
	for kind, n := range s.byKind {
		byKind[kind] = n
	}

	return Summary{
		TotalPerformed: s.performed,
		TotalFailed:    s.failed,
		ByOperation:    byOp,
		ByErrorKind:    byKind,
		RecordsHeld:    len(s.records),
	}
}
