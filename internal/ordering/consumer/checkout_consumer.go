package consumer

import (
	"context"
	"fmt"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
	"github.com/deb240485/Ecommerce-Microservices/pkg/metrics"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// OrderCreator is the slice of the order service the consumer needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order *domain.Order) (int, error)
}

type mapFunc func(body []byte) (*domain.Order, error)

// Consumer drains one checkout queue with manual acknowledgements. A delivery
// is acked only after the order row is committed; persistence failures are
// requeued, mapping failures are dead-lettered. Redelivered events therefore
// create duplicate orders, which is the accepted cost of at-least-once.
type Consumer struct {
	ch       *amqp.Channel
	queue    string
	tag      string
	mapOrder mapFunc
	orders   OrderCreator
	logger   *zap.Logger
}

// NewCheckoutConsumer consumes the V1 queue with the full event contract.
func NewCheckoutConsumer(ch *amqp.Channel, orders OrderCreator, logger *zap.Logger) *Consumer {
	return &Consumer{
		ch:       ch,
		queue:    events.CheckoutQueue,
		tag:      "ordering-service",
		mapOrder: mapCheckoutEvent,
		orders:   orders,
		logger:   logger.With(zap.String("queue", events.CheckoutQueue)),
	}
}

// NewCheckoutConsumerV2 consumes the V2 queue with the slim event contract.
func NewCheckoutConsumerV2(ch *amqp.Channel, orders OrderCreator, logger *zap.Logger) *Consumer {
	return &Consumer{
		ch:       ch,
		queue:    events.CheckoutQueueV2,
		tag:      "ordering-service-v2",
		mapOrder: mapCheckoutEventV2,
		orders:   orders,
		logger:   logger.With(zap.String("queue", events.CheckoutQueueV2)),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("set qos on %s: %w", c.queue, err)
	}

	msgs, err := c.ch.Consume(
		c.queue,
		c.tag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", c.queue, err)
	}

	c.logger.Info("consumer started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", c.queue)
			}
			c.processMessage(ctx, msg)
		}
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg amqp.Delivery) {
	logger := c.logger.With(zap.String("correlation_id", msg.CorrelationId))

	order, err := c.mapOrder(msg.Body)
	if err != nil {
		logger.Error("dropping unmappable event", zap.Error(err))
		metrics.RecordConsume(c.queue, false)
		if e2 := msg.Nack(false, false); e2 != nil {
			logger.Error("nack failed", zap.Error(e2))
		}
		return
	}

	id, err := c.orders.CreateOrder(ctx, order)
	if err != nil {
		logger.Error("order creation failed, requeueing event", zap.Error(err))
		metrics.RecordConsume(c.queue, false)
		if e2 := msg.Nack(false, true); e2 != nil {
			logger.Error("nack failed", zap.Error(e2))
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		// The order is committed but the ack was lost; the broker will
		// redeliver and a duplicate order will be created.
		logger.Error("ack failed after order creation", zap.Int("order_id", id), zap.Error(err))
		return
	}

	metrics.RecordConsume(c.queue, true)
	logger.Info("checkout event consumed",
		zap.Int("order_id", id),
		zap.String("user_name", order.UserName))
}
