package contracts

import (
	"context"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type IntakeSessionUsecase interface {
	ListQuestions(ctx context.Context) []responses.Question
	CreateSession(ctx context.Context) (*responses.IntakeSessionCreated, error)
	GetSession(ctx context.Context, sessionID string) (*responses.IntakeSession, error)
	AnswerQuestion(ctx context.Context, sessionID string, questionID int, request *requests.AnswerQuestion) (*responses.IntakeSession, error)
	UpdateOtherNote(ctx context.Context, sessionID string, questionID int, request *requests.UpdateOtherNote) (*responses.IntakeSession, error)
	Next(ctx context.Context, sessionID string) (*responses.IntakeSession, error)
	Previous(ctx context.Context, sessionID string) (*responses.IntakeSession, error)
	Finish(ctx context.Context, sessionID string) (*responses.IntakeSession, error)
	Restart(ctx context.Context, sessionID string) (*responses.IntakeSession, error)
	GetDocument(ctx context.Context, sessionID string) (*responses.IntakeDocument, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// IntakeSessionStore keeps sessions between requests. Find returns a nil
// session and a nil error when the id is unknown or expired.
type IntakeSessionStore interface {
	Save(ctx context.Context, session *survey.Session, exp time.Duration) error
	Find(ctx context.Context, sessionID string) (*survey.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

type EnrichmentPublisher interface {
	PublishDocument(ctx context.Context, sessionID string, document *models.SurveyData) error
}
