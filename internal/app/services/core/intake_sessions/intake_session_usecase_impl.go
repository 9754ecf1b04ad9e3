package intakeSessions

import (
	"context"
	"errors"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/core/survey"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type intakeSessionUsecase struct {
	SessionStore   contracts.IntakeSessionStore
	LockerService  contracts.LockerService
	Publisher      contracts.EnrichmentPublisher
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	now            func() time.Time
}

// sessionChange mutates a loaded session. finished reports that the change
// finalized it.
type sessionChange func(session *survey.Session, now time.Time) (finished bool, err error)

func NewIntakeSessionUsecase(
	sessionStore contracts.IntakeSessionStore,
	lockerService contracts.LockerService,
	publisher contracts.EnrichmentPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.IntakeSessionUsecase {
	return &intakeSessionUsecase{
		SessionStore:   sessionStore,
		LockerService:  lockerService,
		Publisher:      publisher,
		InternalConfig: internalConfig,
		Log:            logger,
		now:            time.Now,
	}
}

func (uc *intakeSessionUsecase) sessionExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.App.SessionExpiredTimeInMinutes) * time.Minute
}

func (uc *intakeSessionUsecase) ListQuestions(ctx context.Context) []responses.Question {
	questions := survey.Questions()
	response := make([]responses.Question, len(questions))
	for i, q := range questions {
		response[i] = toQuestionResponse(q)
	}
	return response
}

func (uc *intakeSessionUsecase) CreateSession(ctx context.Context) (*responses.IntakeSessionCreated, error) {
	requestID := utils.GetRequestID(ctx)

	session := survey.NewSession(utils.GenerateSessionID(), uc.now())
	if err := uc.SessionStore.Save(ctx, session, uc.sessionExpiry()); err != nil {
		uc.Log.Error("intakeSessionUsecase.CreateSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.JWT.Secret, uc.sessionExpiry())
	if err != nil {
		uc.Log.Error("intakeSessionUsecase.CreateSession error signing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "intake_session_created", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return &responses.IntakeSessionCreated{
		IntakeSession: toSessionResponse(session),
		SessionToken:  token,
	}, nil
}

func (uc *intakeSessionUsecase) GetSession(ctx context.Context, sessionID string) (*responses.IntakeSession, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	response := toSessionResponse(session)
	return &response, nil
}

func (uc *intakeSessionUsecase) AnswerQuestion(ctx context.Context, sessionID string, questionID int, request *requests.AnswerQuestion) (*responses.IntakeSession, error) {
	raw := survey.RawAnswer{Text: request.Text, Selected: request.Selected}
	return uc.changeSession(ctx, sessionID, "AnswerQuestion", func(session *survey.Session, now time.Time) (bool, error) {
		return session.Answer(questionID, raw, now)
	})
}

func (uc *intakeSessionUsecase) UpdateOtherNote(ctx context.Context, sessionID string, questionID int, request *requests.UpdateOtherNote) (*responses.IntakeSession, error) {
	return uc.changeSession(ctx, sessionID, "UpdateOtherNote", func(session *survey.Session, now time.Time) (bool, error) {
		return false, session.SetOtherNote(questionID, request.Note, now)
	})
}

func (uc *intakeSessionUsecase) Next(ctx context.Context, sessionID string) (*responses.IntakeSession, error) {
	return uc.changeSession(ctx, sessionID, "Next", func(session *survey.Session, now time.Time) (bool, error) {
		return session.Next(now)
	})
}

func (uc *intakeSessionUsecase) Previous(ctx context.Context, sessionID string) (*responses.IntakeSession, error) {
	return uc.changeSession(ctx, sessionID, "Previous", func(session *survey.Session, now time.Time) (bool, error) {
		return false, session.Previous(now)
	})
}

func (uc *intakeSessionUsecase) Finish(ctx context.Context, sessionID string) (*responses.IntakeSession, error) {
	return uc.changeSession(ctx, sessionID, "Finish", func(session *survey.Session, now time.Time) (bool, error) {
		if err := session.Finish(now); err != nil {
			return false, err
		}
		return true, nil
	})
}

func (uc *intakeSessionUsecase) Restart(ctx context.Context, sessionID string) (*responses.IntakeSession, error) {
	return uc.changeSession(ctx, sessionID, "Restart", func(session *survey.Session, now time.Time) (bool, error) {
		session.Restart(now)
		return false, nil
	})
}

func (uc *intakeSessionUsecase) GetDocument(ctx context.Context, sessionID string) (*responses.IntakeDocument, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	document, err := session.Document()
	if err != nil {
		return nil, mapSurveyError(err)
	}
	return &responses.IntakeDocument{SessionID: session.ID, Document: document}, nil
}

func (uc *intakeSessionUsecase) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := uc.findSession(ctx, sessionID); err != nil {
		return err
	}

	if err := uc.SessionStore.Delete(ctx, sessionID); err != nil {
		uc.Log.Error("intakeSessionUsecase.DeleteSession error deleting session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, "intake_session_deleted", utils.GetRequestID(ctx),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func (uc *intakeSessionUsecase) findSession(ctx context.Context, sessionID string) (*survey.Session, error) {
	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		uc.Log.Error("intakeSessionUsecase.findSession error reading session store",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrIntakeSessionNotFound(nil, sessionID)
	}
	return session, nil
}

// changeSession runs change on the stored session under the session lock and
// saves the result. A change that finalizes the session hands the document
// off for enrichment.
func (uc *intakeSessionUsecase) changeSession(ctx context.Context, sessionID, operation string, change sessionChange) (*responses.IntakeSession, error) {
	requestID := utils.GetRequestID(ctx)
	lockKey := constvars.RedisIntakeSessionLockKeyPrefix + sessionID

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, constvars.IntakeSessionLockExpiration)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrIntakeSessionBusy(nil, sessionID)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("intakeSessionUsecase.changeSession error releasing session lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(err),
			)
		}
	}()

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	finished, err := change(session, uc.now())
	if err != nil {
		uc.Log.Info("intakeSessionUsecase.changeSession change rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Error(err),
		)
		return nil, mapSurveyError(err)
	}

	if err := uc.SessionStore.Save(ctx, session, uc.sessionExpiry()); err != nil {
		uc.Log.Error("intakeSessionUsecase.changeSession error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Error(err),
		)
		return nil, err
	}

	if finished {
		uc.publishDocument(ctx, session)
	}

	response := toSessionResponse(session)
	return &response, nil
}

// publishDocument never fails the request. The session is already saved as
// completed.
func (uc *intakeSessionUsecase) publishDocument(ctx context.Context, session *survey.Session) {
	requestID := utils.GetRequestID(ctx)
	utils.LogBusinessEvent(uc.Log, "intake_session_finished", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Int(constvars.LoggingAnsweredKey, session.Record.Meta.Progress.Answered),
	)

	document, err := session.Document()
	if err != nil {
		uc.Log.Error("intakeSessionUsecase.publishDocument error building document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
		return
	}
	if err := uc.Publisher.PublishDocument(ctx, session.ID, &document); err != nil {
		uc.Log.Error("intakeSessionUsecase.publishDocument error handing off document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
		return
	}

	utils.LogBusinessEvent(uc.Log, "intake_document_published", requestID,
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
}

func mapSurveyError(err error) error {
	switch {
	case errors.Is(err, survey.ErrNotANumber):
		return exceptions.ErrAnswerNotANumber(err)
	case errors.Is(err, survey.ErrUnknownOption):
		return exceptions.ErrAnswerUnknownOption(err)
	case errors.Is(err, survey.ErrAnswerShape), errors.Is(err, survey.ErrNotAnswerable):
		return exceptions.ErrInvalidAnswer(err)
	case errors.Is(err, survey.ErrUnknownQuestion):
		return exceptions.ErrUnknownQuestion(err)
	case errors.Is(err, survey.ErrNoOtherOption):
		return exceptions.ErrQuestionHasNoOtherOption(err)
	case errors.Is(err, survey.ErrSessionCompleted):
		return exceptions.ErrIntakeSessionCompleted(err)
	case errors.Is(err, survey.ErrNotCompleted):
		return exceptions.ErrIntakeSessionNotCompleted(err)
	default:
		return exceptions.ErrServerProcess(err)
	}
}
