// Package discount wraps the discount service's gRPC client for the basket
// enrichment path: bounded per-call timeout, a circuit breaker against a
// flapping collaborator, and a single error that means "lookup unavailable".
package discount

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/deb240485/Ecommerce-Microservices/pkg/discountpb"
)

// ErrDiscountUnavailable means the lookup itself failed (transport, timeout,
// open breaker). A product with no coupon is NOT this error: the discount
// service answers that case with a zero-amount coupon.
var ErrDiscountUnavailable = errors.New("discount lookup unavailable")

// Coupon is the lookup result. Amount zero means no discount applies.
type Coupon struct {
	ProductName string
	Description string
	Amount      float64
}

type Client struct {
	client  discountpb.DiscountServiceClient
	breaker *gobreaker.CircuitBreaker[*discountpb.CouponModel]
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(client discountpb.DiscountServiceClient, timeout time.Duration, logger *zap.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*discountpb.CouponModel](gobreaker.Settings{
		Name:    "discount-lookup",
		Timeout: 10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &Client{
		client:  client,
		breaker: breaker,
		timeout: timeout,
		logger:  logger,
	}
}

// GetDiscount returns the coupon for a product. It always returns a coupon on
// success; absence of a discount is Amount == 0, never an error.
func (c *Client) GetDiscount(ctx context.Context, productName string) (*Coupon, error) {
	model, err := c.breaker.Execute(func() (*discountpb.CouponModel, error) {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		return c.client.GetDiscount(callCtx, &discountpb.GetDiscountRequest{
			ProductName: productName,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDiscountUnavailable, err)
	}

	return &Coupon{
		ProductName: model.GetProductName(),
		Description: model.GetDescription(),
		Amount:      model.GetAmount(),
	}, nil
}
