package contact

import (
	"errors"
	"net/http"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid contact message status")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
// Anything unrecognized is a server error.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
