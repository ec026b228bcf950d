package consumer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
)

// ErrEventMapping marks a payload that can never become an order. Deliveries
// failing with it are dead-lettered instead of requeued.
var ErrEventMapping = errors.New("cannot map checkout event to order")

func mapCheckoutEvent(body []byte) (*domain.Order, error) {
	var event events.BasketCheckoutEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventMapping, err)
	}
	if event.UserName == "" {
		return nil, fmt.Errorf("%w: missing user name", ErrEventMapping)
	}

	return &domain.Order{
		UserName:      event.UserName,
		TotalPrice:    event.TotalPrice,
		FirstName:     event.FirstName,
		LastName:      event.LastName,
		EmailAddress:  event.EmailAddress,
		AddressLine:   event.AddressLine,
		Country:       event.Country,
		State:         event.State,
		ZipCode:       event.ZipCode,
		CardName:      event.CardName,
		CardNumber:    event.CardNumber,
		Expiration:    event.Expiration,
		CVV:           event.CVV,
		PaymentMethod: event.PaymentMethod,
	}, nil
}

// mapCheckoutEventV2 produces an order carrying only the fields the slim
// contract has. The shipping and payment columns stay at their zero values.
func mapCheckoutEventV2(body []byte) (*domain.Order, error) {
	var event events.BasketCheckoutEventV2
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEventMapping, err)
	}
	if event.UserName == "" {
		return nil, fmt.Errorf("%w: missing user name", ErrEventMapping)
	}

	return &domain.Order{
		UserName:   event.UserName,
		TotalPrice: event.TotalPrice,
	}, nil
}
