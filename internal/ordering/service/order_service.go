package service

import (
	"context"
	"fmt"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/repository"
	"github.com/deb240485/Ecommerce-Microservices/pkg/metrics"
	"go.uber.org/zap"
)

// OrderService creates orders from consumed checkout events and answers
// read queries for the HTTP surface.
type OrderService struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (int, error) {
	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("create order for %s: %w", order.UserName, err)
	}

	metrics.RecordOrderCreated()
	s.logger.Info("order created",
		zap.Int("order_id", id),
		zap.String("user_name", order.UserName),
		zap.Float64("total_price", order.TotalPrice))
	return id, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *OrderService) ListOrders(ctx context.Context, userName string) ([]*domain.Order, error) {
	return s.repo.ListOrdersByUserName(ctx, userName)
}
