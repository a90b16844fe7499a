package newsletter

import (
	"errors"
	"net/http"
)

var ErrSubscriberNotFound = errors.New("subscriber not found")

func GetHTTPStatusCode(err error) int {
	if errors.Is(err, ErrSubscriberNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
