package requests

// AnswerQuestion carries one answer: typed text for text questions or the
// selected option labels for choice questions.
type AnswerQuestion struct {
	Text     *string  `json:"text"`
	Selected []string `json:"selected" validate:"omitempty,dive,required,max=200"`
}

type UpdateOtherNote struct {
	Note string `json:"note" validate:"max=1000"`
}
