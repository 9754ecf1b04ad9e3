package survey

import "errors"

var (
	ErrUnknownPath      = errors.New("unknown survey path")
	ErrFieldType        = errors.New("value type does not match survey field")
	ErrNotANumber       = errors.New("answer is not a number")
	ErrUnknownOption    = errors.New("selection is not one of the question options")
	ErrAnswerShape      = errors.New("answer shape does not match question type")
	ErrNoOtherOption    = errors.New("question has no other option")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrNotAnswerable    = errors.New("question does not take an answer")
	ErrSessionCompleted = errors.New("survey already completed")
	ErrNotCompleted     = errors.New("survey not completed yet")
)
