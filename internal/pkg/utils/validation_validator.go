package utils

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateAnswerShape, requests.AnswerQuestion{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAnswerShape requires exactly one of text or selected.
func validateAnswerShape(sl validator.StructLevel) {
	answer := sl.Current().Interface().(requests.AnswerQuestion)
	hasText := answer.Text != nil
	hasSelection := answer.Selected != nil
	if hasText == hasSelection {
		sl.ReportError(answer.Text, "Text", "Text", constvars.ValidationTagAnswerShape, "")
	}
}
