package handler

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks request payloads before any service call; failures
// short-circuit with a structured error response.
var validate = validator.New()

type signupRequest struct {
	Name            string `json:"name" validate:"required,min=3,max=30"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=50"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type createPostRequest struct {
	Title    string `json:"title" validate:"required,max=100"`
	Content  string `json:"content" validate:"required,max=1000"`
	ImageKey string `json:"imageKey" validate:"omitempty,max=255"`
}

type createCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type uploadURLRequest struct {
	Filename string `json:"filename" validate:"required,max=255"`
}

// fieldMessages overrides the generic message for well-known fields.
var fieldMessages = map[string]string{
	"Name.min":                "Name must be at least 3 characters long",
	"Name.max":                "Name must be at most 30 characters long",
	"Email.email":             "Invalid email address",
	"Password.min":            "Password must be at least 6 characters long",
	"Password.max":            "Password must be at most 50 characters long",
	"ConfirmPassword.eqfield": "Passwords must match",
	"Title.max":               "Title must be less than 100 characters",
	"Content.max":             "Content must be less than 1000 characters",
}

// validationMessage turns the first field error into a user-facing message.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request"
	}

	fe := fieldErrors[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s is too short", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
