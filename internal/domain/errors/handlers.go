package errors

// Response is the JSON envelope written for failed requests
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly error message
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "NOTIFICATION_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}
