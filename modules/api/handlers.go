package api

import (
	"errors"

	"github.com/example/calculator-service/modules/calculator"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	// Health check endpoint
	m.app.Get("/health", m.healthHandler)

	// API v1 routes
	api := m.app.Group("/api/v1")

	api.Post("/calculate", m.calculate)
	api.Get("/operations", m.listOperations)
	api.Get("/history", m.getHistory)
	api.Get("/summary", m.getSummary)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// calculate handles POST /api/v1/calculate.
func (m *APIModule) calculate(c *fiber.Ctx) error {
	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.calculatorPort.Calculate(c.UserContext(), calculator.CalculateRequest{
		Num1:      rawOperand(req.Num1),
		Num2:      rawOperand(req.Num2),
		Operation: req.Operation,
	})
	if err != nil {
		return writeCalculationError(c, err)
	}

	return c.JSON(CalculateResponse{
		ID:         resp.ID,
		Num1:       resp.Num1,
		Num2:       resp.Num2,
		Operation:  resp.Operation,
		Result:     resp.Result,
		ComputedAt: resp.ComputedAt,
	})
}

// listOperations handles GET /api/v1/operations.
func (m *APIModule) listOperations(c *fiber.Ctx) error {
	ops, err := m.calculatorPort.ListOperations(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "operations_failed",
			Message: "Failed to list operations",
		})
	}
	return c.JSON(OperationsResponse{Operations: ops})
}

// getHistory handles GET /api/v1/history.
func (m *APIModule) getHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)

	records, err := m.historyPort.GetRecent(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "history_failed",
			Message: "Failed to retrieve history",
		})
	}
	return c.JSON(records)
}

// getSummary handles GET /api/v1/summary.
func (m *APIModule) getSummary(c *fiber.Ctx) error {
	summary, err := m.historyPort.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "summary_failed",
			Message: "Failed to retrieve summary",
		})
	}
	return c.JSON(summary)
}

// writeCalculationError maps calculation errors onto HTTP responses. All
// four validation classifications are client errors; anything else is a
// server fault.
func writeCalculationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, calculator.ErrMissingData):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   calculator.KindMissingData,
			Message: "num1, num2 and operation are required",
		})
	case errors.Is(err, calculator.ErrInvalidNumber):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   calculator.KindInvalidNumber,
			Message: "Operands must be valid numbers",
		})
	case errors.Is(err, calculator.ErrInvalidOperation):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   calculator.KindInvalidOperation,
			Message: "Operation must be one of add, subtract, multiply, divide",
		})
	case errors.Is(err, calculator.ErrDivisionByZero):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   calculator.KindDivisionByZero,
			Message: "Cannot divide by zero",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "calculation_failed",
		Message: "Failed to perform calculation",
	})
}
