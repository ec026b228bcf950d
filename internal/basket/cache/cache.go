package cache

import (
	"context"
	"errors"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/domain"
)

type BasketCache interface {
	Get(ctx context.Context, userName string) (*domain.ShoppingCart, error)
	Set(ctx context.Context, userName string, cart *domain.ShoppingCart) error
	Delete(ctx context.Context, userName string) error
}

var ErrCacheMiss = errors.New("cache miss")
