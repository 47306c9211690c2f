package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// CalculatorPort defines the interface for interacting with the calculator
// module. Consumers should use this interface instead of directly
// referencing the Module.
type CalculatorPort interface {
	Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error)
	ListOperations(ctx context.Context) ([]string, error)
}

// calculatorAdapter implements CalculatorPort using the service container.
type calculatorAdapter struct {
	container mono.ServiceContainer
}

// NewCalculatorAdapter creates a new adapter for the calculator services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalculatorAdapter(container mono.ServiceContainer) CalculatorPort {
	return &calculatorAdapter{container: container}
}

// Calculate performs a calculation via the calculate service.
func (a *calculatorAdapter) Calculate(ctx context.Context, req CalculateRequest) (*CalculateResponse, error) {
	var resp CalculateResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"calculate",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return nil, mapServiceError(err)
	}
	return &resp, nil
}

// ListOperations returns the supported operation selectors.
func (a *calculatorAdapter) ListOperations(ctx context.Context) ([]string, error) {
	client, err := a.container.GetRequestReplyService("list-operations")
	if err != nil {
		return nil, fmt.Errorf("failed to get list-operations service: %w", err)
	}

	resp, err := client.Call(ctx, []byte{})
	if err != nil {
		return nil, fmt.Errorf("list-operations service call failed: %w", err)
	}

	var response OperationsResponse
	if err := json.Unmarshal(resp.Data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return response.Operations, nil
}

// mapServiceError converts service errors back to sentinel errors by
// checking the error message content. This is necessary because errors
// lose their type information when sent over NATS.
func mapServiceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "missing data") {
		return ErrMissingData
	}
	if strings.Contains(errMsg, "cannot be parsed as a number") {
		return ErrInvalidNumber
	}
	if strings.Contains(errMsg, "invalid operation") || strings.Contains(errMsg, "is not one of") {
		return ErrInvalidOperation
	}
	if strings.Contains(errMsg, "division by zero") {
		return ErrDivisionByZero
	}

	return err
}
