package exceptions

import (
	"errors"
	"fmt"
	"strings"

	"intake-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors joins the message of every failed field.
func FormatAllValidationErrors(err error) string {
	fieldErrors, message := validationErrorsOf(err)
	if fieldErrors == nil {
		return message
	}

	messages := make([]string, len(fieldErrors))
	for i, fieldErr := range fieldErrors {
		messages[i] = validationMessage(fieldErr)
	}
	return strings.Join(messages, ", ")
}

// FormatFirstValidationError is the client message of a failed request body.
func FormatFirstValidationError(err error) string {
	fieldErrors, message := validationErrorsOf(err)
	if fieldErrors == nil {
		return message
	}
	return validationMessage(fieldErrors[0])
}

func validationErrorsOf(err error) (validator.ValidationErrors, string) {
	if err == nil {
		return nil, constvars.ErrClientCannotProcessRequest
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return nil, constvars.ErrDevInvalidInput
	}
	return fieldErrors, ""
}

// validationMessage renders "selected[1] maximum at 200 characters long".
// The answer shape rule spans two fields and has no field prefix.
func validationMessage(fieldErr validator.FieldError) string {
	message, ok := constvars.CustomValidationErrorMessages[fieldErr.Tag()]
	switch {
	case !ok:
		message = constvars.ValidationDefaultMessage
	case fieldErr.Tag() == constvars.ValidationTagAnswerShape:
		return message
	case strings.Contains(message, "%s"):
		message = fmt.Sprintf(message, fieldErr.Param())
	}
	return strings.ToLower(fieldErr.Field()) + " " + message
}
