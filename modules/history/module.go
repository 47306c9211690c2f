package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/calculator-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Module consumes calculation events and retains a bounded history of them.
type Module struct {
	store  *Store
	logger types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.EventConsumerModule   = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
)

// NewModule creates a new history module with the given retention limit.
// A limit of zero or less selects the default.
func NewModule(maxRecords int, logger types.Logger) *Module {
	return &Module{
		store:  NewStoreWithLimit(maxRecords),
		logger: logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "history"
}

// RegisterEventConsumers registers event handlers for calculation events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	performedDef, ok := registry.GetEventByName("CalculationPerformed", "v1", "calculator")
	if !ok {
		return fmt.Errorf("event CalculationPerformed.v1 not found")
	}
	if err := registry.RegisterEventConsumer(performedDef, m.handleCalculationPerformed, m); err != nil {
		return fmt.Errorf("failed to register CalculationPerformed consumer: %w", err)
	}

	failedDef, ok := registry.GetEventByName("CalculationFailed", "v1", "calculator")
	if !ok {
		return fmt.Errorf("event CalculationFailed.v1 not found")
	}
	if err := registry.RegisterEventConsumer(failedDef, m.handleCalculationFailed, m); err != nil {
		return fmt.Errorf("failed to register CalculationFailed consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", []string{"CalculationPerformed.v1", "CalculationFailed.v1"})
	return nil
}

// handleCalculationPerformed processes CalculationPerformed events.
func (m *Module) handleCalculationPerformed(_ context.Context, msg *mono.Msg) error {
	var event events.CalculationPerformedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal CalculationPerformed event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.RecordPerformed(Record{
		ID:         event.ID,
		Num1:       event.Num1,
		Num2:       event.Num2,
		Operation:  event.Operation,
		Result:     event.Result,
		RecordedAt: event.ComputedAt,
	})

	m.logger.Debug("Recorded calculation",
		"id", event.ID,
		"operation", event.Operation)

	return nil
}

// handleCalculationFailed processes CalculationFailed events.
func (m *Module) handleCalculationFailed(_ context.Context, msg *mono.Msg) error {
	var event events.CalculationFailedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		m.logger.Error("Failed to unmarshal CalculationFailed event", "error", err)
		return nil // Don't retry on unmarshal errors
	}

	m.store.RecordFailed(Record{
		Operation:  event.Operation,
		ErrorKind:  event.Kind,
		RecordedAt: event.FailedAt,
	})

	m.logger.Debug("Recorded rejected calculation", "kind", event.Kind)

	return nil
}

// Start initializes the history module.
func (m *Module) Start(_ context.Context) error {
	m.logger.Info("History module started", "maxRecords", m.store.maxRecords)
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("History module stopped")
	return nil
}

// Store returns the history store.
func (m *Module) Store() *Store {
	return m.store
}

// RegisterServices registers this module's services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := container.RegisterRequestReplyService("get-history", m.handleGetHistory); err != nil {
		return fmt.Errorf("failed to register get-history service: %w", err)
	}

	if err := container.RegisterRequestReplyService("get-summary", m.handleGetSummary); err != nil {
		return fmt.Errorf("failed to register get-summary service: %w", err)
	}

	m.logger.Info("Registered history services",
		"services", []string{"get-history", "get-summary"})
	return nil
}

// handleGetHistory handles get-history service requests.
func (m *Module) handleGetHistory(_ context.Context, msg *mono.Msg) ([]byte, error) {
	var req HistoryRequest
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return nil, fmt.Errorf("invalid request: %w", err)
		}
	}

	// Default limit
	if req.Limit <= 0 {
		req.Limit = 100
	}
	if req.Limit > 1000 {
		req.Limit = 1000
	}

	return json.Marshal(m.store.Recent(req.Limit))
}

// handleGetSummary handles get-summary service requests.
func (m *Module) handleGetSummary(_ context.Context, _ *mono.Msg) ([]byte, error) {
	return json.Marshal(m.store.GetSummary())
}
