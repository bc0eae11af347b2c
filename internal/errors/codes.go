package errors

// ErrorCode is the machine-readable code carried by every API error response
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidFilter ErrorCode = "VALIDATION_005"
)

// Account hierarchy error codes (ACCOUNT_*)
const (
	AccountTradingNotFound    ErrorCode = "ACCOUNT_001"
	AccountUserNotFound       ErrorCode = "ACCOUNT_002"
	AccountInvalidID          ErrorCode = "ACCOUNT_003"
	AccountNoChanges          ErrorCode = "ACCOUNT_004"
	AccountInvalidStatus      ErrorCode = "ACCOUNT_005"
	AccountInvalidBalance     ErrorCode = "ACCOUNT_006"
	AccountManagerUnavailable ErrorCode = "ACCOUNT_007"
)

// Import error codes (IMPORT_*)
const (
	ImportEmpty    ErrorCode = "IMPORT_001"
	ImportTooLarge ErrorCode = "IMPORT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemNotFound           ErrorCode = "SYSTEM_005"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidFilter: "Invalid filter value",

	AccountTradingNotFound:    "Trading account not found",
	AccountUserNotFound:       "User account not found",
	AccountInvalidID:          "Invalid trading account ID",
	AccountNoChanges:          "No changes to apply",
	AccountInvalidStatus:      "Invalid connection status",
	AccountInvalidBalance:     "Balance cannot be negative",
	AccountManagerUnavailable: "Account management is temporarily unavailable",

	ImportEmpty:    "No records to import",
	ImportTooLarge: "Too many records in one import",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
