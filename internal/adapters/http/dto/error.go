package dto

type ErrorResponse struct {
	Error string `json:"error" msgpack:"error"`
	Type  string `json:"type,omitempty" msgpack:"type,omitempty"`
}

func NewErrorResponse(errorType string, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
		Type:  errorType,
	}
}
