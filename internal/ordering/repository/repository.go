package repository

import (
	"context"
	"errors"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrPersistence   = errors.New("order could not be persisted")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (int, error)
	GetOrderByID(ctx context.Context, id int) (*domain.Order, error)
	ListOrdersByUserName(ctx context.Context, userName string) ([]*domain.Order, error)
	Close() error
}
