// Package events holds the integration event contracts shared between the
// basket and ordering services, plus the broker topology names both sides
// must agree on. V1 and V2 are both permanently supported wire contracts;
// each version has its own exchange and queue, so a consumer only ever sees
// the schema it was built for.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Broker topology. Exchanges are fanout, queues are durable and bound to
// exactly one exchange. Failed deliveries are routed to the shared
// dead-letter queue.
const (
	CheckoutExchange   = "basket-checkout"
	CheckoutExchangeV2 = "basket-checkout-v2"

	CheckoutQueue   = "basket-checkout-queue"
	CheckoutQueueV2 = "basket-checkout-queue-v2"

	DeadLetterExchange = "basket-checkout-dlx"
	DeadLetterQueue    = "basket-checkout-dlq"
)

// Event is implemented by every integration event the publisher accepts.
// The exchange binding is what selects the schema version on the wire.
type Event interface {
	Exchange() string
	Correlation() string
}

// IntegrationEvent carries the envelope fields common to every version.
type IntegrationEvent struct {
	CorrelationID string    `json:"correlationId"`
	CreatedDate   time.Time `json:"createdDate"`
}

// NewIntegrationEvent stamps the envelope, generating a fresh correlation id
// when the caller does not already have one to carry through.
func NewIntegrationEvent(correlationID string) IntegrationEvent {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	return IntegrationEvent{
		CorrelationID: correlationID,
		CreatedDate:   time.Now().UTC(),
	}
}

// BasketCheckoutEvent is the V1 wire contract: the full shipping and payment
// field set alongside the server-computed basket total.
type BasketCheckoutEvent struct {
	IntegrationEvent

	UserName   string  `json:"userName"`
	TotalPrice float64 `json:"totalPrice"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	AddressLine  string `json:"addressLine"`
	Country      string `json:"country"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`

	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiration    string `json:"expiration"`
	CVV           string `json:"cvv"`
	PaymentMethod int    `json:"paymentMethod"`
}

func (BasketCheckoutEvent) Exchange() string { return CheckoutExchange }

func (e BasketCheckoutEvent) Correlation() string { return e.CorrelationID }

// BasketCheckoutEventV2 is the slimmed V2 wire contract: user name and total
// only. Shipping and payment details are resolved out of band.
type BasketCheckoutEventV2 struct {
	IntegrationEvent

	UserName   string  `json:"userName"`
	TotalPrice float64 `json:"totalPrice"`
}

func (BasketCheckoutEventV2) Exchange() string { return CheckoutExchangeV2 }

func (e BasketCheckoutEventV2) Correlation() string { return e.CorrelationID }
