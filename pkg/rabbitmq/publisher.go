package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
	"github.com/deb240485/Ecommerce-Microservices/pkg/metrics"
)

// ErrPublishFailed means the broker did not confirm the delivery. The event
// was not durably accepted and the caller must treat the operation as not
// having happened.
var ErrPublishFailed = errors.New("event publish not confirmed by broker")

type Publisher struct {
	ch     *amqp.Channel
	logger *zap.Logger
}

func NewPublisher(client *Client, logger *zap.Logger) *Publisher {
	return &Publisher{ch: client.Channel(), logger: logger}
}

// Publish sends one integration event to the exchange of its schema version
// as a persistent JSON message and waits for the publisher confirm. A failed
// or unconfirmed publish is returned as ErrPublishFailed so the caller can
// abort before any irreversible side effect.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	exchange := event.Exchange()
	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     uuid.NewString(),
		CorrelationId: event.Correlation(),
		Timestamp:     time.Now().UTC(),
		Body:          body,
	}

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(
		ctx,
		exchange,
		"",    // routing key; exchanges are fanout
		false, // mandatory
		false, // immediate
		msg,
	)
	if err != nil {
		metrics.RecordPublish(exchange, false)
		return fmt.Errorf("%w: %v", ErrPublishFailed, err)
	}

	if !confirm.Wait() {
		metrics.RecordPublish(exchange, false)
		return ErrPublishFailed
	}

	metrics.RecordPublish(exchange, true)
	p.logger.Info("integration event published",
		zap.String("exchange", exchange),
		zap.String("correlation_id", event.Correlation()))
	return nil
}
