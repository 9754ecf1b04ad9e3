package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeSessionController struct {
	Log                  *zap.Logger
	IntakeSessionUsecase contracts.IntakeSessionUsecase
	InternalConfig       *config.InternalConfig
}

// sessionMove is one of the body-less session transitions.
type sessionMove func(ctx context.Context, sessionID string) (*responses.IntakeSession, error)

func NewIntakeSessionController(logger *zap.Logger, intakeSessionUsecase contracts.IntakeSessionUsecase, internalConfig *config.InternalConfig) *IntakeSessionController {
	return &IntakeSessionController{
		Log:                  logger,
		IntakeSessionUsecase: intakeSessionUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *IntakeSessionController) requestTimeout() time.Duration {
	if ctrl.InternalConfig.App.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *IntakeSessionController) buildUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func (ctrl *IntakeSessionController) ListQuestions(w http.ResponseWriter, r *http.Request) {
	result := ctrl.IntakeSessionUsecase.ListQuestions(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQuestionsSuccessMessage, result)
}

func (ctrl *IntakeSessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.CreateSession(ctx)
	if err != nil {
		ctrl.Log.Error("Failed to create intake session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateIntakeSessionSuccessMessage, result)
}

func (ctrl *IntakeSessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.GetSession(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIntakeSessionSuccessMessage, result)
}

func (ctrl *IntakeSessionController) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	questionID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamQuestionID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamQuestionID))
		return
	}

	request := new(requests.AnswerQuestion)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.AnswerQuestion(ctx, sessionID, questionID, request)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	ctrl.Log.Debug("Answer saved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingQuestionIDKey, questionID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnswerQuestionSuccessMessage, result)
}

func (ctrl *IntakeSessionController) UpdateOtherNote(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	questionID, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamQuestionID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamQuestionID))
		return
	}

	request := new(requests.UpdateOtherNote)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.UpdateOtherNote(ctx, sessionID, questionID, request)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateOtherNoteSuccessMessage, result)
}

func (ctrl *IntakeSessionController) Next(w http.ResponseWriter, r *http.Request) {
	ctrl.moveSession(w, r, ctrl.IntakeSessionUsecase.Next, constvars.MoveIntakeSessionSuccessMessage)
}

func (ctrl *IntakeSessionController) Previous(w http.ResponseWriter, r *http.Request) {
	ctrl.moveSession(w, r, ctrl.IntakeSessionUsecase.Previous, constvars.MoveIntakeSessionSuccessMessage)
}

func (ctrl *IntakeSessionController) Finish(w http.ResponseWriter, r *http.Request) {
	ctrl.moveSession(w, r, ctrl.IntakeSessionUsecase.Finish, constvars.FinishIntakeSessionSuccessMessage)
}

func (ctrl *IntakeSessionController) Restart(w http.ResponseWriter, r *http.Request) {
	ctrl.moveSession(w, r, ctrl.IntakeSessionUsecase.Restart, constvars.RestartIntakeSessionSuccessMessage)
}

func (ctrl *IntakeSessionController) moveSession(w http.ResponseWriter, r *http.Request, move sessionMove, message string) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := move(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, result)
}

func (ctrl *IntakeSessionController) GetDocument(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.IntakeSessionUsecase.GetDocument(ctx, sessionID)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIntakeDocumentSuccessMessage, result)
}

func (ctrl *IntakeSessionController) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	if err := ctrl.IntakeSessionUsecase.DeleteSession(ctx, sessionID); err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteIntakeSessionSuccessMessage, nil)
}
