package blog

import (
	"errors"
	"net/http"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidInput  = errors.New("invalid post input")
	ErrInvalidStatus = errors.New("invalid post status")
)

func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
