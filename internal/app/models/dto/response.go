package dto

// ListResponse is the pagination envelope returned by every list endpoint.
type ListResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

// CodeListResponse is the reduced envelope for only_codes requests.
type CodeListResponse struct {
	Data []string `json:"data"`
}

// MessageResponse represents a standard success message body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents the standard error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
