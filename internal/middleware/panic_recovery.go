package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"tradebot365-admin/internal/errors"
	"tradebot365-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panicking handler into a SYSTEM_001 answer and counts the panic per route
func PanicRecovery(metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				// the route template keeps the label set bounded
				route := c.Path()
				if route == "" {
					route = "unmatched"
				}
				metrics.IncrementCounter("panic_recovered", map[string]string{"path": route})

				slog.Error("Panic recovered",
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"route", route,
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
					"user_id", c.Get("user_id"),
				)

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, errors.NewErrorResponse(errors.SystemInternalError, traceID))
			}()

			return next(c)
		}
	}
}
