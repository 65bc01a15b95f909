package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/orders/domain/entity"
)

const (
	// TopSellingLimit bounds the best-seller ranking.
	TopSellingLimit = 5
	// RecentOrdersLimit bounds the admin recent-orders feed.
	RecentOrdersLimit = 5
)

// AnalyticsRepository runs the read-only aggregate queries.
type AnalyticsRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	// TotalRevenue returns zero, never an error, for an empty order set.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	// TopSellingProducts ranks by summed line quantity desc, then product id asc.
	TopSellingProducts(ctx context.Context, limit int) ([]entity.ProductSales, error)
	RecentOrders(ctx context.Context, limit int) ([]entity.RecentOrder, error)
}

type analyticsUsecase struct {
	repo AnalyticsRepository
}

func NewAnalyticsUsecase(repo AnalyticsRepository) *analyticsUsecase {
	return &analyticsUsecase{repo: repo}
}

func (u *analyticsUsecase) CountOrders(ctx context.Context) (int64, error) {
	n, err := u.repo.CountOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (u *analyticsUsecase) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	rev, err := u.repo.TotalRevenue(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return rev, nil
}

// Analytics combines count, revenue and the top-selling ranking for the admin dashboard.
func (u *analyticsUsecase) Analytics(ctx context.Context) (*entity.Analytics, error) {
	count, err := u.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	rev, err := u.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := u.TopSellingProducts(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.Analytics{TotalOrders: count, TotalRevenue: rev, ProductSales: sales}, nil
}

func (u *analyticsUsecase) RecentOrders(ctx context.Context) ([]entity.RecentOrder, error) {
	out, err := u.repo.RecentOrders(ctx, RecentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	return out, nil
}

// TopSellingProducts is the single best-seller metric used by every admin view.
func (u *analyticsUsecase) TopSellingProducts(ctx context.Context) ([]entity.ProductSales, error) {
	out, err := u.repo.TopSellingProducts(ctx, TopSellingLimit)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	return out, nil
}
