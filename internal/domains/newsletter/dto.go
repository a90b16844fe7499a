package newsletter

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubscribeReq is the body of POST /v1/newsletter/subscribe.
// Locale is optional; when absent the Accept-Language header decides.
type SubscribeReq struct {
	Email  string `json:"email"`
	Locale string `json:"locale"`
}

func (r SubscribeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		),
		validation.Field(&r.Locale,
			validation.In("pt", "en", "fr").Error("locale must be one of: pt, en, fr"),
		),
	)
}

// UnsubscribeReq is the body of POST /v1/newsletter/unsubscribe.
type UnsubscribeReq struct {
	Email string `json:"email"`
}

func (r UnsubscribeReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		),
	)
}
