package api

import (
	"context"
	"testing"
)

func TestNewModule(t *testing.T) {
	m := NewModule(&mockLogger{})

	if m == nil {
		t.Fatal("NewModule returned nil")
	}
	if m.port == "" {
		t.Error("expected port to be set")
	}
}

func TestModule_Name(t *testing.T) {
	m := NewModule(&mockLogger{})

	if name := m.Name(); name != "api" {
		t.Errorf("Name() = %q, want 'api'", name)
	}
}

func TestModule_Dependencies(t *testing.T) {
	m := NewModule(&mockLogger{})

	deps := m.Dependencies()
	if len(deps) != 2 || deps[0] != "calculator" || deps[1] != "history" {
		t.Errorf("Dependencies() = %v, want [calculator history]", deps)
	}
}

func TestModule_Start_MissingDependencies(t *testing.T) {
	m := NewModule(&mockLogger{})

	if err := m.Start(context.Background()); err == nil {
		t.Error("Start() without dependencies should fail")
	}
}

func TestModule_Health(t *testing.T) {
	m := NewModule(&mockLogger{})

	// Before Start the server is not up
	if h := m.Health(context.Background()); h.Healthy {
		t.Error("expected unhealthy status before Start()")
	}
}
