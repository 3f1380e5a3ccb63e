package dto

// APIResponse is the envelope returned on every successful request.
type APIResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// APIErrorResponse is the envelope returned on every failed request. Stack is
// only populated outside production.
type APIErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		Success:    true,
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}
