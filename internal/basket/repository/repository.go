package repository

import (
	"context"
	"errors"

	"github.com/deb240485/Ecommerce-Microservices/internal/basket/domain"
)

// ErrCartNotFound distinguishes "no cart for this user" from infrastructure
// failures; callers decide whether that is an empty basket or an invalid
// checkout.
var ErrCartNotFound = errors.New("shopping cart not found")

// CartRepository is the cart store contract. Consumers define this interface,
// not the MongoDB implementation.
type CartRepository interface {
	GetByUserName(ctx context.Context, userName string) (*domain.ShoppingCart, error)
	Replace(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error)
	DeleteByUserName(ctx context.Context, userName string) error
}
