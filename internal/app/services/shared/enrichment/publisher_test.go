package enrichment

import (
	"context"
	"errors"
	"testing"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeChannel struct {
	exchange  string
	key       string
	published []amqp091.Publishing
	err       error
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange = exchange
	c.key = key
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error { return nil }

func TestRabbitMQPublisher(t *testing.T) {
	ctx := context.Background()
	document := models.NewSurveyData()
	document.Meta.Progress.Answered = 3

	t.Run("Persistent JSON Message", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := newRabbitMQPublisher(channel, "intake_enrichment", zap.NewNop())

		require.NoError(t, publisher.PublishDocument(ctx, "s-1", &document))
		require.Len(t, channel.published, 1)

		msg := channel.published[0]
		assert.Equal(t, "", channel.exchange, "default exchange routes by queue name")
		assert.Equal(t, "intake_enrichment", channel.key)
		assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
		assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
		assert.Equal(t, "JSON", msg.Headers["message_type"])
		assert.Equal(t, "s-1", msg.Headers["session_id"])

		var body struct {
			Event     string            `json:"event"`
			SessionID string            `json:"session_id"`
			Document  models.SurveyData `json:"document"`
		}
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, constvars.EnrichmentEventFinished, body.Event)
		assert.Equal(t, "s-1", body.SessionID)
		assert.Equal(t, 3, body.Document.Meta.Progress.Answered)
	})

	t.Run("Publish Failure", func(t *testing.T) {
		channel := &fakeChannel{err: errors.New("channel closed")}
		publisher := newRabbitMQPublisher(channel, "intake_enrichment", zap.NewNop())

		err := publisher.PublishDocument(ctx, "s-1", &document)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "intake_enrichment")
	})
}

func TestLogPublisher(t *testing.T) {
	document := models.NewSurveyData()
	assert.NoError(t, NewLogPublisher(zap.NewNop()).PublishDocument(context.Background(), "s-1", &document))
}
