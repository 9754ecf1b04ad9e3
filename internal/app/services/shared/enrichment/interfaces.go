package enrichment

import (
	"context"

	"intake-service/internal/app/models"

	"github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Message is the body published for every finished intake session.
type Message struct {
	Event     string             `json:"event"`
	SessionID string             `json:"session_id"`
	Document  *models.SurveyData `json:"document"`
}
