package consumer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/repository"
	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
)

type mockOrders struct {
	m      sync.Mutex
	err    error
	nextID int
	orders []*domain.Order
}

func (m *mockOrders) CreateOrder(_ context.Context, order *domain.Order) (int, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	order.ID = m.nextID
	m.orders = append(m.orders, order)
	return m.nextID, nil
}

func (m *mockOrders) created() []*domain.Order {
	m.m.Lock()
	defer m.m.Unlock()
	return m.orders
}

type fakeAcknowledger struct {
	m       sync.Mutex
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error {
	f.m.Lock()
	defer f.m.Unlock()
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.m.Lock()
	defer f.m.Unlock()
	f.nacked = true
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(_ uint64, requeue bool) error {
	return f.Nack(0, false, requeue)
}

func delivery(t *testing.T, payload any) (amqp.Delivery, *fakeAcknowledger) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	ack := &fakeAcknowledger{}
	return amqp.Delivery{
		Acknowledger:  ack,
		Body:          body,
		CorrelationId: "test-correlation",
	}, ack
}

func v1Consumer(orders OrderCreator) *Consumer {
	return &Consumer{
		queue:    events.CheckoutQueue,
		mapOrder: mapCheckoutEvent,
		orders:   orders,
		logger:   zap.NewNop(),
	}
}

func v2Consumer(orders OrderCreator) *Consumer {
	return &Consumer{
		queue:    events.CheckoutQueueV2,
		mapOrder: mapCheckoutEventV2,
		orders:   orders,
		logger:   zap.NewNop(),
	}
}

func TestProcessMessage_V1_CreatesOrderAndAcks(t *testing.T) {
	orders := &mockOrders{}
	sut := v1Consumer(orders)

	msg, ack := delivery(t, events.BasketCheckoutEvent{
		IntegrationEvent: events.NewIntegrationEvent(""),
		UserName:         "benspark",
		TotalPrice:       750,
		FirstName:        "ben",
		LastName:         "spark",
		EmailAddress:     "deb240485rana@gmail.com",
		AddressLine:      "Bangalore",
		Country:          "India",
		PaymentMethod:    1,
	})
	sut.processMessage(context.Background(), msg)

	created := orders.created()
	require.Len(t, created, 1)
	assert.Equal(t, "benspark", created[0].UserName)
	assert.Equal(t, float64(750), created[0].TotalPrice)
	assert.Equal(t, "ben", created[0].FirstName)
	assert.Equal(t, 1, created[0].PaymentMethod)
	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
}

func TestProcessMessage_V2_CreatesOrderAndAcks(t *testing.T) {
	orders := &mockOrders{}
	sut := v2Consumer(orders)

	msg, ack := delivery(t, events.BasketCheckoutEventV2{
		IntegrationEvent: events.NewIntegrationEvent(""),
		UserName:         "benspark",
		TotalPrice:       750,
	})
	sut.processMessage(context.Background(), msg)

	created := orders.created()
	require.Len(t, created, 1)
	assert.Equal(t, "benspark", created[0].UserName)
	assert.Equal(t, float64(750), created[0].TotalPrice)
	assert.Empty(t, created[0].FirstName, "slim contract carries no shipping details")
	assert.True(t, ack.acked)
}

func TestProcessMessage_MalformedPayload_DeadLetters(t *testing.T) {
	orders := &mockOrders{}
	sut := v1Consumer(orders)

	ack := &fakeAcknowledger{}
	msg := amqp.Delivery{Acknowledger: ack, Body: []byte("not json")}
	sut.processMessage(context.Background(), msg)

	assert.Empty(t, orders.created())
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue, "unmappable payloads must not be redelivered")
}

func TestProcessMessage_MissingUserName_DeadLetters(t *testing.T) {
	orders := &mockOrders{}
	sut := v1Consumer(orders)

	msg, ack := delivery(t, events.BasketCheckoutEvent{TotalPrice: 10})
	sut.processMessage(context.Background(), msg)

	assert.Empty(t, orders.created())
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeue)
}

func TestProcessMessage_PersistenceError_Requeues(t *testing.T) {
	orders := &mockOrders{err: repository.ErrPersistence}
	sut := v1Consumer(orders)

	msg, ack := delivery(t, events.BasketCheckoutEvent{UserName: "benspark", TotalPrice: 750})
	sut.processMessage(context.Background(), msg)

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeue, "persistence failures are retried via redelivery")
}

// Redelivery of an already-processed event creates a second order; there is
// no dedup on the consumer side.
func TestProcessMessage_Redelivery_CreatesDuplicateOrder(t *testing.T) {
	orders := &mockOrders{}
	sut := v1Consumer(orders)

	msg, _ := delivery(t, events.BasketCheckoutEvent{UserName: "benspark", TotalPrice: 750})
	sut.processMessage(context.Background(), msg)

	redelivered := msg
	redelivered.Acknowledger = &fakeAcknowledger{}
	redelivered.Redelivered = true
	sut.processMessage(context.Background(), redelivered)

	created := orders.created()
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)
	assert.Equal(t, created[0].UserName, created[1].UserName)
}

func TestMapCheckoutEvent_RoundTripFields(t *testing.T) {
	body, err := json.Marshal(events.BasketCheckoutEvent{
		UserName:   "benspark",
		TotalPrice: 750,
		CardName:   "Visa",
		CardNumber: "1234567890123456",
		Expiration: "12/25",
		CVV:        "123",
	})
	require.NoError(t, err)

	order, err := mapCheckoutEvent(body)
	require.NoError(t, err)
	assert.Equal(t, "Visa", order.CardName)
	assert.Equal(t, "12/25", order.Expiration)
	assert.Equal(t, "123", order.CVV)
}

func TestMapCheckoutEventV2_RejectsEmptyUserName(t *testing.T) {
	body, err := json.Marshal(events.BasketCheckoutEventV2{TotalPrice: 5})
	require.NoError(t, err)

	_, mapErr := mapCheckoutEventV2(body)
	require.ErrorIs(t, mapErr, ErrEventMapping)
}
