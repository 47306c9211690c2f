package calculator

import (
	"context"
	"errors"
	"testing"

	"github.com/go-monolith/mono/pkg/types"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(_ string, _ ...any) {}
func (m *mockLogger) Info(_ string, _ ...any)  {}
func (m *mockLogger) Warn(_ string, _ ...any)  {}
func (m *mockLogger) Error(_ string, _ ...any) {}
func (m *mockLogger) With(_ ...any) types.Logger {
	return m
}
func (m *mockLogger) WithModule(_ string) types.Logger {
	return m
}
func (m *mockLogger) WithError(_ error) types.Logger {
	return m
}

func newMockLogger() types.Logger {
	return &mockLogger{}
}

func TestNewModule(t *testing.T) {
	m := NewModule(newMockLogger())

	if m == nil {
		t.Fatal("NewModule returned nil")
	}
	if m.service == nil {
		t.Error("expected service to be set")
	}
}

func TestModule_Name(t *testing.T) {
	m := NewModule(newMockLogger())

	if name := m.Name(); name != "calculator" {
		t.Errorf("Name() = %q, want 'calculator'", name)
	}
}

func TestModule_StartStop(t *testing.T) {
	m := NewModule(newMockLogger())
	ctx := context.Background()

	// Start should work even without an event bus; events become no-ops
	if err := m.Start(ctx); err != nil {
		t.Errorf("Start() error = %v", err)
	}
	if err := m.Stop(ctx); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestModule_EmitEvents(t *testing.T) {
	m := NewModule(newMockLogger())

	defs := m.EmitEvents()
	if len(defs) != 2 {
		t.Fatalf("EmitEvents() returned %d definitions, want 2", len(defs))
	}
}

func TestModule_calculate(t *testing.T) {
	m := NewModule(newMockLogger())
	ctx := context.Background()

	resp, err := m.calculate(ctx, newRequest(strPtr("10"), strPtr("5"), strPtr("add")), nil)
	if err != nil {
		t.Fatalf("calculate() error = %v", err)
	}
	if resp.Result != 15 {
		t.Errorf("calculate() result = %v, want 15", resp.Result)
	}
	if resp.Operation != "add" {
		t.Errorf("calculate() operation = %q, want 'add'", resp.Operation)
	}
}

func TestModule_calculate_ValidationError(t *testing.T) {
	m := NewModule(newMockLogger())
	ctx := context.Background()

	_, err := m.calculate(ctx, newRequest(strPtr("10"), strPtr("0"), strPtr("divide")), nil)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("calculate() error = %v, want ErrDivisionByZero", err)
	}
}

func TestModule_handleListOperations(t *testing.T) {
	m := NewModule(newMockLogger())
	ctx := context.Background()

	data, err := m.handleListOperations(ctx, nil)
	if err != nil {
		t.Fatalf("handleListOperations() error = %v", err)
	}

	want := `{"operations":["add","subtract","multiply","divide"]}`
	if string(data) != want {
		t.Errorf("handleListOperations() = %s, want %s", data, want)
	}
}
