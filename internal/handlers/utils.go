package handlers

import (
	"fmt"
	"log/slog"

	"tradebot365-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the authenticated user ID set by the auth middleware
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

// requestContext returns the request context tagged with the trace ID so service logs can
// be correlated with the response
func requestContext(c echo.Context) echo.Context {
	traceID := getTraceID(c)
	if traceID == "" || services.TraceIDFromContext(c.Request().Context()) == traceID {
		return c
	}
	c.SetRequest(c.Request().WithContext(services.ContextWithTraceID(c.Request().Context(), traceID)))
	return c
}

// createAuditLog records a bulk change to the account records. Failures are logged and do
// not fail the request.
func createAuditLog(auditService services.AuditServiceInterface, action string, count int, c echo.Context) {
	performedBy, _ := getUserIDFromContext(c)
	if err := auditService.LogRecordsImported(action, count, performedBy, getClientIP(c), c.Request().UserAgent()); err != nil {
		slog.Warn("Failed to write audit log", "action", action, "error", err, "trace_id", getTraceID(c))
	}
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	return c.RealIP()
}
