package dto

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Timestamp string       `json:"timestamp"`
	Status    int          `json:"status"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Path      string       `json:"path"`
	ErrorCode string       `json:"errorCode"`
	Errors    []FieldError `json:"errors"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	ObjectName     string `json:"objectName"`
	Field          string `json:"field"`
	RejectedValue  any    `json:"rejectedValue"`
	DefaultMessage string `json:"defaultMessage"`
	Code           string `json:"code"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
