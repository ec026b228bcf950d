package grpc

import (
	"context"

	"github.com/deb240485/Ecommerce-Microservices/internal/discount/repository"
	pb "github.com/deb240485/Ecommerce-Microservices/pkg/discountpb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type DiscountHandler struct {
	pb.UnimplementedDiscountServiceServer
	repo   repository.DiscountRepository
	logger *zap.Logger
}

func NewDiscountHandler(repo repository.DiscountRepository, logger *zap.Logger) *DiscountHandler {
	return &DiscountHandler{repo: repo, logger: logger}
}

func (h *DiscountHandler) GetDiscount(ctx context.Context, req *pb.GetDiscountRequest) (*pb.CouponModel, error) {
	if req.GetProductName() == "" {
		return nil, status.Error(codes.InvalidArgument, "product_name is required")
	}

	coupon, err := h.repo.GetDiscount(ctx, req.GetProductName())
	if err != nil {
		h.logger.Error("discount lookup failed",
			zap.String("product_name", req.GetProductName()),
			zap.Error(err))
		return nil, status.Errorf(codes.Internal, "failed to get discount: %v", err)
	}

	h.logger.Info("discount fetched",
		zap.String("product_name", req.GetProductName()),
		zap.Float64("amount", coupon.Amount))

	return &pb.CouponModel{
		Id:          int32(coupon.ID),
		ProductName: coupon.ProductName,
		Description: coupon.Description,
		Amount:      coupon.Amount,
	}, nil
}
