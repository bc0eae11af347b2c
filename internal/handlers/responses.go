package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"tradebot365-admin/internal/errors"
	"tradebot365-admin/internal/models"
	"tradebot365-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers answer errors only through SendError (4xx and known service failures) and
// SendSystemError (anything internal). Neither echo.NewHTTPError nor a bare c.JSON is used
// for errors so every error body carries a code and the trace ID.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with the generic system error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)

	slog.Error("Internal error",
		"error", internalErr,
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// serviceErrorCodes maps the service and model errors a handler may see to API codes
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{services.ErrTradingAccountNotFound, errors.AccountTradingNotFound},
	{services.ErrUserAccountNotFound, errors.AccountUserNotFound},
	{services.ErrInvalidTradingAccountID, errors.AccountInvalidID},
	{services.ErrNoChanges, errors.AccountNoChanges},
	{services.ErrAccountManagerDown, errors.AccountManagerUnavailable},
	{services.ErrActionRejected, errors.ValidationGeneral},
	{services.ErrNoRecordsToImport, errors.ImportEmpty},
	{services.ErrTooManyRecords, errors.ImportTooLarge},
	{models.ErrInvalidConnectionStatus, errors.AccountInvalidStatus},
	{models.ErrInvalidBalance, errors.AccountInvalidBalance},
	{models.ErrMissingTradingAccountID, errors.ValidationRequiredField},
	{models.ErrMissingCSPAccountID, errors.ValidationRequiredField},
	{models.ErrInvalidStatusFilter, errors.ValidationInvalidFilter},
	{models.ErrInvalidLiveDemoFilter, errors.ValidationInvalidFilter},
}

// sendServiceError answers with the code of a known service error, or a system error
func sendServiceError(c echo.Context, err error) error {
	for _, m := range serviceErrorCodes {
		if stderrors.Is(err, m.err) {
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
