package adapters

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
)

// analyticsRepository は集計クエリのGORM実装です。
type analyticsRepository struct {
	db *gorm.DB
}

var _ usecase.AnalyticsRepository = (*analyticsRepository)(nil)

func NewAnalyticsRepository(db *gorm.DB) *analyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountOrders(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&OrderModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// TotalRevenue は COALESCE により空集合でも 0 を返します。
func (r *analyticsRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var rev decimal.Decimal
	row := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Select("COALESCE(SUM(total_price), 0)").
		Row()
	if err := row.Scan(&rev); err != nil {
		return decimal.Zero, fmt.Errorf("scan revenue: %w", err)
	}
	return rev, nil
}

// TopSellingProducts は明細数量の合計で降順、同数は product_id 昇順に並べます。
// 商品名は同じ商品の最新の明細 (id 最大) のスナップショットから取ります。
// 改名後も新しい名前で表示され、削除済み商品も集計に残ります。
func (r *analyticsRepository) TopSellingProducts(ctx context.Context, limit int) ([]entity.ProductSales, error) {
	latestName := r.db.
		Table("order_lines AS nl").
		Select("nl.product_name").
		Where("nl.product_id = l.product_id").
		Order("nl.id DESC").
		Limit(1)

	out := []entity.ProductSales{}
	if err := r.db.WithContext(ctx).
		Table("order_lines AS l").
		Select("l.product_id, (?) AS product_name, SUM(l.quantity) AS sales_count", latestName).
		Group("l.product_id").
		Order("sales_count DESC").
		Order("l.product_id ASC").
		Limit(limit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *analyticsRepository) RecentOrders(ctx context.Context, limit int) ([]entity.RecentOrder, error) {
	out := []entity.RecentOrder{}
	if err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id AS order_id, o.total_price, o.created_at, u.name AS customer_name, o.status").
		Joins("JOIN users u ON u.id = o.user_id").
		Order("o.created_at DESC").
		Order("o.id DESC").
		Limit(limit).
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
