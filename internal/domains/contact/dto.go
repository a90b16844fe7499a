package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubmitContactReq is the body of POST /v1/contact.
type SubmitContactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}

// Validate enforces the form rules. All failures are reported at once;
// consent must be strictly true (Required fails on the zero value).
func (r SubmitContactReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 0).Error("name must be at least 2 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid email address"),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(10, 0).Error("message must be at least 10 characters"),
		),
		validation.Field(&r.Consent,
			validation.Required.Error("consent is required"),
		),
	)
}

// UpdateStatusReq is the body of PATCH /v1/admin/messages/:id/status.
type UpdateStatusReq struct {
	Status string `json:"status"`
}

func (r UpdateStatusReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(string(StatusNew), string(StatusRead), string(StatusArchived)).
				Error("status must be one of: new, read, archived"),
		),
	)
}
