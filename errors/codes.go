package errors

// ErrorCode is the machine-readable code carried by every AppError
type ErrorCode int32

const (
	ErrorCode_UNKNOWN            ErrorCode = 0
	ErrorCode_HTTP_OK            ErrorCode = 200
	ErrorCode_INTERNAL           ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT   ErrorCode = 1001
	ErrorCode_NOT_FOUND          ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED    ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD    ErrorCode = 1004
	ErrorCode_ROUTE_NOT_FOUND    ErrorCode = 1005
	ErrorCode_METHOD_NOT_ALLOWED ErrorCode = 1006
	ErrorCode_PAYLOAD_TOO_LARGE  ErrorCode = 1007

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2001
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2002
	ErrorCode_AUTH_USER_INACTIVE ErrorCode = 2003

	// AI analysis
	ErrorCode_AI_ANALYSIS_FAILED      ErrorCode = 5001
	ErrorCode_AI_MODEL_NOT_CONFIGURED ErrorCode = 5002
	ErrorCode_AI_MODEL_TIMEOUT        ErrorCode = 5003
	ErrorCode_AI_QUOTA_EXCEEDED       ErrorCode = 5004

	// Database
	ErrorCode_DB_QUERY_FAILED ErrorCode = 7001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                 "UNKNOWN",
	ErrorCode_HTTP_OK:                 "HTTP_OK",
	ErrorCode_INTERNAL:                "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:        "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:               "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:         "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:         "INVALID_PAYLOAD",
	ErrorCode_ROUTE_NOT_FOUND:         "ROUTE_NOT_FOUND",
	ErrorCode_METHOD_NOT_ALLOWED:      "METHOD_NOT_ALLOWED",
	ErrorCode_PAYLOAD_TOO_LARGE:       "PAYLOAD_TOO_LARGE",
	ErrorCode_AUTH_INVALID_TOKEN:      "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:      "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_USER_INACTIVE:      "AUTH_USER_INACTIVE",
	ErrorCode_AI_ANALYSIS_FAILED:      "AI_ANALYSIS_FAILED",
	ErrorCode_AI_MODEL_NOT_CONFIGURED: "AI_MODEL_NOT_CONFIGURED",
	ErrorCode_AI_MODEL_TIMEOUT:        "AI_MODEL_TIMEOUT",
	ErrorCode_AI_QUOTA_EXCEEDED:       "AI_QUOTA_EXCEEDED",
	ErrorCode_DB_QUERY_FAILED:         "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return errorCodeNames[ErrorCode_UNKNOWN]
}

// MarshalText renders the code by name in JSON bodies and logs
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
