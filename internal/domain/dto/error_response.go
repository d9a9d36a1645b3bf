package dto

import "time"

// ErrorResponse is the standard JSON error payload returned by every
// endpoint and middleware.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: underlying error text, omitted when not useful.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"period overlaps an existing period"`
	ErrorDetails string    `json:"error,omitempty" example:"pq: conflicting key value"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
