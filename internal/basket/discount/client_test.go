package discount

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/deb240485/Ecommerce-Microservices/pkg/discountpb"
)

type fakeDiscountClient struct {
	m     sync.Mutex
	model *discountpb.CouponModel
	err   error
	calls int
}

func (f *fakeDiscountClient) GetDiscount(context.Context, *discountpb.GetDiscountRequest, ...grpc.CallOption) (*discountpb.CouponModel, error) {
	f.m.Lock()
	defer f.m.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.model, nil
}

func (f *fakeDiscountClient) callCount() int {
	f.m.Lock()
	defer f.m.Unlock()
	return f.calls
}

func TestGetDiscount_MapsCoupon(t *testing.T) {
	fake := &fakeDiscountClient{model: &discountpb.CouponModel{
		Id:          1,
		ProductName: "IPhone X",
		Description: "IPhone Discount",
		Amount:      150,
	}}

	sut := NewClient(fake, time.Second, zap.NewNop())
	coupon, err := sut.GetDiscount(context.Background(), "IPhone X")
	require.NoError(t, err)
	assert.Equal(t, "IPhone X", coupon.ProductName)
	assert.Equal(t, float64(150), coupon.Amount)
}

func TestGetDiscount_ZeroAmountIsNotAnError(t *testing.T) {
	fake := &fakeDiscountClient{model: &discountpb.CouponModel{
		ProductName: "No Discount",
		Description: "No Discount Available",
		Amount:      0,
	}}

	sut := NewClient(fake, time.Second, zap.NewNop())
	coupon, err := sut.GetDiscount(context.Background(), "Unknown Product")
	require.NoError(t, err)
	assert.Equal(t, float64(0), coupon.Amount)
}

func TestGetDiscount_TransportError(t *testing.T) {
	fake := &fakeDiscountClient{err: fmt.Errorf("connection refused")}

	sut := NewClient(fake, time.Second, zap.NewNop())
	_, err := sut.GetDiscount(context.Background(), "IPhone X")
	require.ErrorIs(t, err, ErrDiscountUnavailable)
}

func TestGetDiscount_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeDiscountClient{err: fmt.Errorf("connection refused")}
	sut := NewClient(fake, time.Second, zap.NewNop())

	for i := 0; i < 5; i++ {
		_, err := sut.GetDiscount(context.Background(), "IPhone X")
		require.ErrorIs(t, err, ErrDiscountUnavailable)
	}
	callsBeforeOpen := fake.callCount()

	// The breaker is now open; further lookups fail fast without reaching
	// the transport.
	_, err := sut.GetDiscount(context.Background(), "IPhone X")
	require.ErrorIs(t, err, ErrDiscountUnavailable)
	assert.Equal(t, callsBeforeOpen, fake.callCount())
}
