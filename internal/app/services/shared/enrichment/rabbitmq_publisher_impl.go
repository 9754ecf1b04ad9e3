package enrichment

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher opens a channel on connection and declares a durable
// queue for finished documents.
func NewRabbitMQPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EnrichmentPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue)
	}

	return newRabbitMQPublisher(channel, queue, logger), nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) PublishDocument(ctx context.Context, sessionID string, document *models.SurveyData) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(Message{
		Event:     constvars.EnrichmentEventFinished,
		SessionID: sessionID,
		Document:  document,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		constvars.EnrichmentMessageTypeHeader: constvars.EnrichmentMessageTypeJSON,
		constvars.EnrichmentSessionIDHeader:   sessionID,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.PublishDocument published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}
