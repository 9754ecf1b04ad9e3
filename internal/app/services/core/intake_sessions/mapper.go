package intakeSessions

import (
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/dto/responses"
)

func toQuestionResponse(q survey.Question) responses.Question {
	response := responses.Question{
		ID:          q.ID,
		Step:        q.Step,
		Title:       q.Title,
		Description: q.Description,
		Type:        string(q.Kind),
		Key:         q.Path,
		OtherLabel:  q.OtherLabel,
	}
	for _, option := range q.Options {
		response.Options = append(response.Options, responses.QuestionOption{
			Label: option.Label,
			Value: option.Value,
		})
	}
	return response
}

func toSessionResponse(session *survey.Session) responses.IntakeSession {
	current := session.Current()
	notes := make(map[string]string, len(session.OtherNotes))
	for path, note := range session.OtherNotes {
		notes[path] = note
	}

	return responses.IntakeSession{
		SessionID:       session.ID,
		CurrentQuestion: toQuestionResponse(current),
		Selection:       current.Selection(session.Record),
		Progress:        session.Progress(),
		Completed:       session.Completed,
		OtherNotes:      notes,
		Record:          session.Record,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
}
