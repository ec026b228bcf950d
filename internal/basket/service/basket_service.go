package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/cache"
	"github.com/deb240485/Ecommerce-Microservices/internal/basket/discount"
	"github.com/deb240485/Ecommerce-Microservices/internal/basket/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/basket/repository"
	"github.com/deb240485/Ecommerce-Microservices/pkg/events"
)

// EventPublisher publishes one versioned integration event to the broker and
// does not return until the broker has durably accepted it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// DiscountLookup resolves a product's coupon; a product without a coupon
// yields a zero-amount coupon, not an error.
type DiscountLookup interface {
	GetDiscount(ctx context.Context, productName string) (*discount.Coupon, error)
}

type BasketService struct {
	repo      repository.CartRepository
	cache     cache.BasketCache
	discounts DiscountLookup
	publisher EventPublisher
	logger    *zap.Logger
	sfg       singleflight.Group // prevents cache stampede
}

func NewBasketService(
	repo repository.CartRepository,
	basketCache cache.BasketCache,
	discounts DiscountLookup,
	publisher EventPublisher,
	logger *zap.Logger,
) *BasketService {
	return &BasketService{
		repo:      repo,
		cache:     basketCache,
		discounts: discounts,
		publisher: publisher,
		logger:    logger,
	}
}

// GetBasket returns the user's cart, serving an empty cart when none exists.
func (s *BasketService) GetBasket(ctx context.Context, userName string) (*domain.ShoppingCart, error) {
	v, err, _ := s.sfg.Do(userName, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, userName)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("basket cache get failed", zap.Error(err))
		}

		cart, errGet := s.repo.GetByUserName(ctx, userName)
		if errors.Is(errGet, repository.ErrCartNotFound) {
			return &domain.ShoppingCart{
				UserName:  userName,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userName, cart); errSet != nil {
				s.logger.Warn("basket cache set failed", zap.Error(errSet))
			}
		}()

		return cart, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.ShoppingCart), nil
}

// UpdateBasket enriches every item with its current discount and replaces the
// stored cart whole. Items keep their cart order; each lookup is independent.
func (s *BasketService) UpdateBasket(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	for i := range cart.Items {
		item := &cart.Items[i]

		coupon, err := s.discounts.GetDiscount(ctx, item.ProductName)
		if err != nil {
			return nil, err
		}
		if coupon.Amount > 0 {
			item.Price -= coupon.Amount
			if item.Price < 0 {
				// Discounts are not clamped; an over-large coupon drives the
				// price negative and the pricing data needs fixing upstream.
				s.logger.Warn("discount exceeds unit price",
					zap.String("product_name", item.ProductName),
					zap.Float64("discount", coupon.Amount),
					zap.Float64("price", item.Price))
			}
		}
	}

	replaced, err := s.repo.Replace(ctx, cart)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(cart.UserName)
	return replaced, nil
}

func (s *BasketService) DeleteBasket(ctx context.Context, userName string) error {
	if err := s.repo.DeleteByUserName(ctx, userName); err != nil {
		return err
	}

	s.invalidateCache(userName)
	return nil
}

// Checkout turns the user's stored cart into a V1 checkout event. The order
// of operations is load, publish, delete: a failed publish must leave the
// cart untouched so the client can simply retry.
func (s *BasketService) Checkout(ctx context.Context, req *domain.BasketCheckout) error {
	cart, err := s.repo.GetByUserName(ctx, req.UserName)
	if err != nil {
		return err
	}

	event := events.BasketCheckoutEvent{
		IntegrationEvent: events.NewIntegrationEvent(""),
		UserName:         req.UserName,
		TotalPrice:       cart.TotalPrice(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		EmailAddress:     req.EmailAddress,
		AddressLine:      req.AddressLine,
		Country:          req.Country,
		State:            req.State,
		ZipCode:          req.ZipCode,
		CardName:         req.CardName,
		CardNumber:       req.CardNumber,
		Expiration:       req.Expiration,
		CVV:              req.CVV,
		PaymentMethod:    req.PaymentMethod,
	}

	return s.finishCheckout(ctx, req.UserName, event)
}

// CheckoutV2 is the V2 contract over the same pipeline: user name only, the
// total still computed from the stored cart.
func (s *BasketService) CheckoutV2(ctx context.Context, req *domain.BasketCheckoutV2) error {
	cart, err := s.repo.GetByUserName(ctx, req.UserName)
	if err != nil {
		return err
	}

	event := events.BasketCheckoutEventV2{
		IntegrationEvent: events.NewIntegrationEvent(""),
		UserName:         req.UserName,
		TotalPrice:       cart.TotalPrice(),
	}

	return s.finishCheckout(ctx, req.UserName, event)
}

func (s *BasketService) finishCheckout(ctx context.Context, userName string, event events.Event) error {
	if err := s.publisher.Publish(ctx, event); err != nil {
		return err
	}

	s.logger.Info("basket published",
		zap.String("user_name", userName),
		zap.String("correlation_id", event.Correlation()))

	if err := s.repo.DeleteByUserName(ctx, userName); err != nil {
		// The event is already on the wire; a client retry from here will
		// publish again and the duplicate surfaces as a second order.
		s.logger.Error("failed to delete basket after publish",
			zap.String("user_name", userName),
			zap.Error(err))
		return err
	}

	s.invalidateCache(userName)
	return nil
}

func (s *BasketService) invalidateCache(userName string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userName); err != nil {
		s.logger.Warn("basket cache invalidation failed",
			zap.String("user_name", userName),
			zap.Error(err))
	}
}
