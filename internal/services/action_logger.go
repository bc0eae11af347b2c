package services

import (
	"context"
	"log/slog"
	"time"
)

type traceIDKey struct{}

// ContextWithTraceID returns a copy of ctx carrying the request trace ID
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by ContextWithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// ActionLogger writes structured events for forwarded account actions and hierarchy changes
type ActionLogger struct {
	logger *slog.Logger
}

func NewActionLogger(logger *slog.Logger) ActionLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActionLogger{
		logger: logger,
	}
}

func (al *ActionLogger) LogActionForwarded(ctx context.Context, action, tradingAccountID string, durationMs int64) {
	al.logger.InfoContext(ctx, "account action forwarded",
		slog.String("event_type", "account_action_forwarded"),
		slog.String("action", action),
		slog.String("trading_account_id", tradingAccountID),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActionLogger) LogActionFailed(ctx context.Context, action, tradingAccountID, errorMsg string) {
	al.logger.WarnContext(ctx, "account action failed",
		slog.String("event_type", "account_action_failed"),
		slog.String("action", action),
		slog.String("trading_account_id", tradingAccountID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActionLogger) LogConnectionToggled(ctx context.Context, tradingAccountID, newStatus string) {
	al.logger.InfoContext(ctx, "connection toggled",
		slog.String("event_type", "connection_toggled"),
		slog.String("trading_account_id", tradingAccountID),
		slog.String("new_status", newStatus),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActionLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActionLogger) LogRecordsImported(ctx context.Context, received, hidden int) {
	al.logger.InfoContext(ctx, "account records imported",
		slog.String("event_type", "account_records_imported"),
		slog.Int("received", received),
		slog.Int("hidden", hidden),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}

func (al *ActionLogger) LogHierarchyInvalidated(ctx context.Context, reason string) {
	al.logger.DebugContext(ctx, "account hierarchy invalidated",
		slog.String("event_type", "hierarchy_invalidated"),
		slog.String("reason", reason),
		slog.String("correlation_id", TraceIDFromContext(ctx)),
	)
}
