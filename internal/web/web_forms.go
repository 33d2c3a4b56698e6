package web

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for form structs
var validate = validator.New()

// PostForm holds the submitted fields of the create/edit post form.
// Values are trimmed before validation so whitespace-only input counts
// as empty. The form carries no date field: the creation date is stamped
// server-side and never editable.
type PostForm struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	Author   string `form:"author" validate:"required"`
	ImgURL   string `form:"img_url" validate:"required,url"`
	Body     string `form:"body" validate:"required"`
}

// postFormFromRequest reads the URL-encoded form fields from the request
func postFormFromRequest(c *gin.Context) PostForm {
	return PostForm{
		Title:    strings.TrimSpace(c.PostForm("title")),
		Subtitle: strings.TrimSpace(c.PostForm("subtitle")),
		Author:   strings.TrimSpace(c.PostForm("author")),
		ImgURL:   strings.TrimSpace(c.PostForm("img_url")),
		Body:     strings.TrimSpace(c.PostForm("body")),
	}
}

// Validate checks the form against its rules and returns a map of
// field name to error message. A nil map means the form is valid.
// Validation never aborts the request: callers re-render the form with
// the returned errors and the original input.
func (f PostForm) Validate() map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["Form"] = err.Error()
		return fieldErrors
	}

	for _, fe := range verrs {
		fieldErrors[fe.Field()] = fieldErrorMessage(fe)
	}
	return fieldErrors
}

// fieldErrorMessage maps a validator tag to a user-facing message
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Must be a valid URL."
	default:
		return "Invalid value."
	}
}
