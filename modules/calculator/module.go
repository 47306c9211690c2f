package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	domain "github.com/example/calculator-service/domain/calc"
	"github.com/example/calculator-service/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Module is the core domain module. It owns the arithmetic dispatcher and
// exposes it to the rest of the application as request-reply services.
type Module struct {
	service  *Service
	eventBus mono.EventBus
	logger   types.Logger
}

// Compile-time interface checks
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.ServiceProviderModule = (*Module)(nil)
	_ mono.EventBusAwareModule   = (*Module)(nil)
	_ mono.EventEmitterModule    = (*Module)(nil)
)

// NewModule creates a new calculator module.
func NewModule(logger types.Logger) *Module {
	return &Module{
		service: NewService(),
		logger:  logger,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "calculator"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.CalculationPerformedV1.ToBase(),
		events.CalculationFailedV1.ToBase(),
	}
}

// RegisterServices registers this module's services in the service container.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "calculate", json.Unmarshal, json.Marshal, m.calculate,
	); err != nil {
		return fmt.Errorf("failed to register calculate service: %w", err)
	}

	if err := container.RegisterRequestReplyService("list-operations", m.handleListOperations); err != nil {
		return fmt.Errorf("failed to register list-operations service: %w", err)
	}

	m.logger.Info("Registered calculator services",
		"services", []string{"calculate", "list-operations"})
	return nil
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("Event bus not set, calculation events will not be published")
	}
	m.logger.Info("Calculator module started")
	return nil
}

// Stop gracefully shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	m.logger.Info("Calculator module stopped")
	return nil
}

// Service returns the calculator service instance.
func (m *Module) Service() *Service {
	return m.service
}

// calculate handles the calculate service request.
func (m *Module) calculate(_ context.Context, req CalculateRequest, _ *mono.Msg) (CalculateResponse, error) {
	result, err := m.service.Calculate(req)
	if err != nil {
		m.publishFailed(req, err)
		return CalculateResponse{}, err
	}

	m.publishPerformed(result)

	return CalculateResponse{
		ID:         result.ID,
		Num1:       result.Num1,
		Num2:       result.Num2,
		Operation:  string(result.Operation),
		Result:     result.Result,
		ComputedAt: result.ComputedAt,
	}, nil
}

// handleListOperations handles the list-operations service request.
// The request body is ignored; the response is the fixed operation set.
func (m *Module) handleListOperations(_ context.Context, _ *mono.Msg) ([]byte, error) {
	ops := make([]string, 0, len(domain.Operations))
	for _, op := range domain.Operations {
		ops = append(ops, string(op))
	}
	return json.Marshal(OperationsResponse{Operations: ops})
}

// publishPerformed publishes a CalculationPerformed event (best-effort).
func (m *Module) publishPerformed(c *domain.Calculation) {
	if m.eventBus == nil {
		return
	}
	ev := events.CalculationPerformedEvent{
		ID:         c.ID,
		Num1:       c.Num1,
		Num2:       c.Num2,
		Operation:  string(c.Operation),
		Result:     c.Result,
		ComputedAt: c.ComputedAt,
	}
	if err := events.CalculationPerformedV1.Publish(m.eventBus, ev, nil); err != nil {
		m.logger.Error("Failed to publish CalculationPerformed event",
			"id", c.ID, "error", err)
	}
}

// publishFailed publishes a CalculationFailed event (best-effort).
func (m *Module) publishFailed(req CalculateRequest, cause error) {
	if m.eventBus == nil {
		return
	}
	ev := events.CalculationFailedEvent{
		Kind:     ErrorKind(cause),
		FailedAt: time.Now().UTC(),
	}
	if req.Operation != nil {
		ev.Operation = *req.Operation
	}
	if err := events.CalculationFailedV1.Publish(m.eventBus, ev, nil); err != nil {
		m.logger.Error("Failed to publish CalculationFailed event",
			"kind", ev.Kind, "error", err)
	}
}
