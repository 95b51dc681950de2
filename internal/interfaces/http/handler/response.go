package handler

import "github.com/vena/backend/internal/interfaces/http/dto"

// ErrorResponse is the error envelope as it appears on the wire, declared
// here for route documentation and response decoding in tests.
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// CountData wraps a bare count, the unread-notification badge uses it.
type CountData struct {
	Count int64 `json:"count"`
}
