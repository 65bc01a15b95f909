package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/transport/http/dto"
)

// AnalyticsUsecase は管理画面向けの集計ユースケースです。
type AnalyticsUsecase interface {
	Analytics(ctx context.Context) (*entity.Analytics, error)
	RecentOrders(ctx context.Context) ([]entity.RecentOrder, error)
	TopSellingProducts(ctx context.Context) ([]entity.ProductSales, error)
}

// AdminOrderHandler は /admin 配下の注文集計エンドポイントを処理します。
type AdminOrderHandler struct {
	uc AnalyticsUsecase
}

func NewAdminOrderHandler(uc AnalyticsUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

// Analytics は GET /admin/orders/analytics を処理します。
func (h *AdminOrderHandler) Analytics(c *gin.Context) {
	a, err := h.uc.Analytics(c.Request.Context())
	if err != nil {
		writeError(c, "order analytics failed", err)
		return
	}
	sales := make([]dto.ProductSalesResponse, 0, len(a.ProductSales))
	for _, s := range a.ProductSales {
		sales = append(sales, dto.ProductSalesResponse{
			ProductID:   s.ProductID,
			ProductName: s.ProductName,
			SalesCount:  s.SalesCount,
		})
	}
	c.JSON(http.StatusOK, dto.AnalyticsResponse{
		TotalOrders:  a.TotalOrders,
		TotalRevenue: a.TotalRevenue.InexactFloat64(),
		ProductSales: sales,
	})
}

// Recent は GET /admin/orders/recent を処理します。
func (h *AdminOrderHandler) Recent(c *gin.Context) {
	orders, err := h.uc.RecentOrders(c.Request.Context())
	if err != nil {
		writeError(c, "recent orders failed", err)
		return
	}
	out := make([]dto.RecentOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.RecentOrderResponse{
			OrderID:      o.OrderID,
			TotalPrice:   o.TotalPrice.InexactFloat64(),
			CreatedAt:    o.CreatedAt,
			NameCustomer: o.CustomerName,
			Status:       string(o.Status),
		})
	}
	c.JSON(http.StatusOK, out)
}

// TopSelling は GET /admin/products/top-selling を処理します。
// 順位は Analytics と同じ販売数量ベースです。
func (h *AdminOrderHandler) TopSelling(c *gin.Context) {
	sales, err := h.uc.TopSellingProducts(c.Request.Context())
	if err != nil {
		writeError(c, "top selling products failed", err)
		return
	}
	out := make([]dto.TopSellingResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.TopSellingResponse{ProductID: s.ProductID, ProductName: s.ProductName})
	}
	c.JSON(http.StatusOK, out)
}
