package enrichment

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher is used when the enrichment hand-off is disabled. It only
// records that a document was ready.
func NewLogPublisher(logger *zap.Logger) contracts.EnrichmentPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) PublishDocument(ctx context.Context, sessionID string, document *models.SurveyData) error {
	p.Log.Info("logPublisher.PublishDocument enrichment disabled, document not forwarded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingAnsweredKey, document.Meta.Progress.Answered),
	)
	return nil
}
