package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// HistoryPort defines the interface for interacting with the history module.
// Consumers should use this interface instead of directly referencing the Module.
type HistoryPort interface {
	GetRecent(ctx context.Context, limit int) ([]Record, error)
	GetSummary(ctx context.Context) (*Summary, error)
}

// historyAdapter implements HistoryPort using the service container.
type historyAdapter struct {
	container mono.ServiceContainer
}

// NewHistoryAdapter creates a new adapter for the history services.
func NewHistoryAdapter(container mono.ServiceContainer) HistoryPort {
	return &historyAdapter{container: container}
}

// GetRecent retrieves up to limit recent calculation records.
func (a *historyAdapter) GetRecent(ctx context.Context, limit int) ([]Record, error) {
	req := HistoryRequest{Limit: limit}

	var response []Record
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-history",
		json.Marshal,
		json.Unmarshal,
		&req,
		&response,
	); err != nil {
		return nil, fmt.Errorf("get-history service call failed: %w", err)
	}
	return response, nil
}

// GetSummary retrieves the aggregate calculation counters.
func (a *historyAdapter) GetSummary(ctx context.Context) (*Summary, error) {
	client, err := a.container.GetRequestReplyService("get-summary")
	if err != nil {
		return nil, fmt.Errorf("failed to get get-summary service: %w", err)
	}

	resp, err := client.Call(ctx, []byte{})
	if err != nil {
		return nil, fmt.Errorf("get-summary service call failed: %w", err)
	}

	var response Summary
	if err := json.Unmarshal(resp.Data, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &response, nil
}
