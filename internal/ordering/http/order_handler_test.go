package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/domain"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/repository"
	"github.com/deb240485/Ecommerce-Microservices/internal/ordering/service"
)

type stubRepo struct {
	orders []*domain.Order
}

func (s *stubRepo) CreateOrder(_ context.Context, order *domain.Order) (int, error) {
	s.orders = append(s.orders, order)
	return len(s.orders), nil
}

func (s *stubRepo) GetOrderByID(_ context.Context, id int) (*domain.Order, error) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (s *stubRepo) ListOrdersByUserName(_ context.Context, userName string) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, o := range s.orders {
		if o.UserName == userName {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) Close() error { return nil }

func newTestRouter(repo *stubRepo) chi.Router {
	svc := service.NewOrderService(repo, zap.NewNop())
	r := chi.NewRouter()
	NewOrderHandler(svc).Routes(r)
	return r
}

func TestListOrders_ReturnsUserOrders(t *testing.T) {
	repo := &stubRepo{orders: []*domain.Order{
		{ID: 1, UserName: "benspark", TotalPrice: 750, CreatedAt: time.Now()},
		{ID: 2, UserName: "someone-else", TotalPrice: 10, CreatedAt: time.Now()},
	}}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/benspark", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "benspark", resp[0].UserName)
	assert.Equal(t, float64(750), resp[0].TotalPrice)
}

func TestListOrders_EmptyList(t *testing.T) {
	r := newTestRouter(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/nobody", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	r := newTestRouter(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/id/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	r := newTestRouter(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/id/not-a-number", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
