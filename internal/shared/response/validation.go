package response

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors flattens ozzo validation.Errors into a stable list so a
// 400 body enumerates every failing field, not just the first.
func FieldErrors(errs validation.Errors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for field, err := range errs {
		out = append(out, FieldError{Field: field, Message: err.Error()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
