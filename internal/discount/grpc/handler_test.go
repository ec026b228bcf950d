package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/deb240485/Ecommerce-Microservices/internal/discount/domain"
	pb "github.com/deb240485/Ecommerce-Microservices/pkg/discountpb"
)

type stubRepo struct {
	coupon *domain.Coupon
	err    error
}

func (s *stubRepo) GetDiscount(context.Context, string) (*domain.Coupon, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.coupon, nil
}

func (s *stubRepo) CreateCoupon(context.Context, *domain.Coupon) error { return nil }
func (s *stubRepo) UpdateCoupon(context.Context, *domain.Coupon) error { return nil }
func (s *stubRepo) DeleteCoupon(context.Context, string) error         { return nil }
func (s *stubRepo) Close() error                                       { return nil }

func TestGetDiscount_Success(t *testing.T) {
	sut := NewDiscountHandler(&stubRepo{coupon: &domain.Coupon{
		ID:          1,
		ProductName: "IPhone X",
		Description: "IPhone Discount",
		Amount:      150,
	}}, zap.NewNop())

	resp, err := sut.GetDiscount(context.Background(), &pb.GetDiscountRequest{ProductName: "IPhone X"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.GetId())
	assert.Equal(t, "IPhone X", resp.GetProductName())
	assert.Equal(t, float64(150), resp.GetAmount())
}

func TestGetDiscount_SentinelForMissingCoupon(t *testing.T) {
	sut := NewDiscountHandler(&stubRepo{coupon: &domain.Coupon{
		ProductName: "No Discount",
		Description: "No Discount Available",
		Amount:      0,
	}}, zap.NewNop())

	resp, err := sut.GetDiscount(context.Background(), &pb.GetDiscountRequest{ProductName: "Unknown"})
	require.NoError(t, err, "a missing coupon is a normal response, not an RPC error")
	assert.Equal(t, "No Discount", resp.GetProductName())
	assert.Equal(t, float64(0), resp.GetAmount())
}

func TestGetDiscount_EmptyProductName(t *testing.T) {
	sut := NewDiscountHandler(&stubRepo{}, zap.NewNop())

	_, err := sut.GetDiscount(context.Background(), &pb.GetDiscountRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetDiscount_RepositoryError(t *testing.T) {
	sut := NewDiscountHandler(&stubRepo{err: fmt.Errorf("connection refused")}, zap.NewNop())

	_, err := sut.GetDiscount(context.Background(), &pb.GetDiscountRequest{ProductName: "IPhone X"})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}
