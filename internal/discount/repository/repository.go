package repository

import (
	"context"

	"github.com/deb240485/Ecommerce-Microservices/internal/discount/domain"
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type DiscountRepository interface {
	GetDiscount(ctx context.Context, productName string) (*domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) error
	UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error
	DeleteCoupon(ctx context.Context, productName string) error
	Close() error
}
