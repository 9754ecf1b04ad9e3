package survey

import (
	"fmt"
	"time"

	"intake-service/internal/app/models"
)

// Session is one respondent's pass through the questionnaire: the answer
// record, the other-note side table keyed by question path and the cursor of
// the question being shown.
type Session struct {
	ID           string            `json:"id"`
	CurrentIndex int               `json:"current_index"`
	Record       models.SurveyData `json:"record"`
	OtherNotes   map[string]string `json:"other_notes"`
	Completed    bool              `json:"completed"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:           id,
		CurrentIndex: IntroQuestionID,
		Record:       models.NewSurveyData(),
		OtherNotes:   map[string]string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *Session) Current() Question {
	q, err := QuestionByID(s.CurrentIndex)
	if err != nil {
		return catalog[IntroQuestionID]
	}
	return q
}

// Next moves to the following question. Moving past the last question
// finalizes the session and reports finished.
func (s *Session) Next(now time.Time) (finished bool, err error) {
	if s.Completed {
		return false, ErrSessionCompleted
	}
	if s.CurrentIndex < LastQuestionID {
		s.CurrentIndex++
		s.UpdatedAt = now
		return false, nil
	}
	if err := s.Finish(now); err != nil {
		return false, err
	}
	return true, nil
}

// Previous moves back one question. Once past the intro the cursor never
// returns to it.
func (s *Session) Previous(now time.Time) error {
	if s.Completed {
		return ErrSessionCompleted
	}
	if s.CurrentIndex > 1 {
		s.CurrentIndex--
		s.UpdatedAt = now
	}
	return nil
}

// Answer normalizes raw for the question and stores it. A completion command
// typed into a free-text or free-text-list question finalizes the session
// instead, and finished reports it.
func (s *Session) Answer(questionID int, raw RawAnswer, now time.Time) (finished bool, err error) {
	if s.Completed {
		return false, ErrSessionCompleted
	}
	q, err := QuestionByID(questionID)
	if err != nil {
		return false, err
	}
	if q.Kind == KindIntro {
		return false, fmt.Errorf("question %d: %w", q.ID, ErrNotAnswerable)
	}

	if raw.Text != nil && q.Kind.AcceptsCompletionCommand() && IsCompletionCommand(*raw.Text) {
		if err := s.Finish(now); err != nil {
			return false, err
		}
		return true, nil
	}

	record, err := q.Apply(s.Record, raw, s.OtherNotes)
	if err != nil {
		return false, err
	}
	s.Record = record
	s.UpdatedAt = now
	return false, nil
}

// SetOtherNote records the free-text "other" note for a question and merges
// it into the stored sentinel entry when there is one.
func (s *Session) SetOtherNote(questionID int, note string, now time.Time) error {
	if s.Completed {
		return ErrSessionCompleted
	}
	q, err := QuestionByID(questionID)
	if err != nil {
		return err
	}

	record, err := q.ApplyOtherNote(s.Record, note)
	if err != nil {
		return err
	}
	if s.OtherNotes == nil {
		s.OtherNotes = map[string]string{}
	}
	s.OtherNotes[q.Path] = note
	s.Record = record
	s.UpdatedAt = now
	return nil
}

func (s *Session) Finish(now time.Time) error {
	if s.Completed {
		return ErrSessionCompleted
	}
	s.Record = Finalize(s.Record, now)
	s.Completed = true
	s.UpdatedAt = now
	return nil
}

// Restart discards every answer and note and returns to the intro.
func (s *Session) Restart(now time.Time) {
	s.CurrentIndex = IntroQuestionID
	s.Record = models.NewSurveyData()
	s.OtherNotes = map[string]string{}
	s.Completed = false
	s.UpdatedAt = now
}

func (s *Session) Progress() models.SurveyProgress {
	if s.Completed {
		return s.Record.Meta.Progress
	}
	return models.SurveyProgress{
		TotalQuestions: s.Record.Meta.Progress.TotalQuestions,
		Answered:       CountAnswered(s.Record),
	}
}

// Document returns the finalized record.
func (s *Session) Document() (models.SurveyData, error) {
	if !s.Completed {
		return models.SurveyData{}, ErrNotCompleted
	}
	return s.Record.Clone(), nil
}
