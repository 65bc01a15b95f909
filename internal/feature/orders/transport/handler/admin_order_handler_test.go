package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/transport/http/dto"
)

type mockAnalyticsUsecase struct {
	AnalyticsFunc          func(ctx context.Context) (*entity.Analytics, error)
	RecentOrdersFunc       func(ctx context.Context) ([]entity.RecentOrder, error)
	TopSellingProductsFunc func(ctx context.Context) ([]entity.ProductSales, error)
}

func (m *mockAnalyticsUsecase) Analytics(ctx context.Context) (*entity.Analytics, error) {
	return m.AnalyticsFunc(ctx)
}
func (m *mockAnalyticsUsecase) RecentOrders(ctx context.Context) ([]entity.RecentOrder, error) {
	return m.RecentOrdersFunc(ctx)
}
func (m *mockAnalyticsUsecase) TopSellingProducts(ctx context.Context) ([]entity.ProductSales, error) {
	return m.TopSellingProductsFunc(ctx)
}

func setupAdminRouter(uc AnalyticsUsecase) *gin.Engine {
	h := NewAdminOrderHandler(uc)
	r := gin.New()
	r.GET("/admin/orders/analytics", h.Analytics)
	r.GET("/admin/orders/recent", h.Recent)
	r.GET("/admin/products/top-selling", h.TopSelling)
	return r
}

func TestAdminOrderHandler_Analytics(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		uc := &mockAnalyticsUsecase{AnalyticsFunc: func(context.Context) (*entity.Analytics, error) {
			return &entity.Analytics{
				TotalOrders:  2,
				TotalRevenue: decimal.NewFromInt(350),
				ProductSales: []entity.ProductSales{
					{ProductID: 7, ProductName: "Tea", SalesCount: 9},
					{ProductID: 1, ProductName: "Cup", SalesCount: 4},
				},
			}, nil
		}}
		w := do(setupAdminRouter(uc), http.MethodGet, "/admin/orders/analytics", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalOrders":2,"totalRevenue":350,"productSales":[
			{"productId":7,"productName":"Tea","salesCount":9},
			{"productId":1,"productName":"Cup","salesCount":4}]}`, w.Body.String())
	})

	t.Run("empty store", func(t *testing.T) {
		t.Parallel()
		uc := &mockAnalyticsUsecase{AnalyticsFunc: func(context.Context) (*entity.Analytics, error) {
			return &entity.Analytics{TotalRevenue: decimal.Zero}, nil
		}}
		w := do(setupAdminRouter(uc), http.MethodGet, "/admin/orders/analytics", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"totalOrders":0,"totalRevenue":0,"productSales":[]}`, w.Body.String())
	})

	t.Run("failure returns 500", func(t *testing.T) {
		t.Parallel()
		uc := &mockAnalyticsUsecase{AnalyticsFunc: func(context.Context) (*entity.Analytics, error) {
			return nil, errors.New("db down")
		}}
		w := do(setupAdminRouter(uc), http.MethodGet, "/admin/orders/analytics", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAdminOrderHandler_Recent(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &mockAnalyticsUsecase{RecentOrdersFunc: func(context.Context) ([]entity.RecentOrder, error) {
		return []entity.RecentOrder{
			{OrderID: 5, TotalPrice: decimal.NewFromInt(250), CreatedAt: at, CustomerName: "Bob", Status: entity.StatusShipped},
		}, nil
	}}
	w := do(setupAdminRouter(uc), http.MethodGet, "/admin/orders/recent", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.RecentOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, uint(5), resp[0].OrderID)
	assert.Equal(t, 250.0, resp[0].TotalPrice)
	assert.Equal(t, "Bob", resp[0].NameCustomer)
	assert.Equal(t, "shipped", resp[0].Status)
	assert.True(t, at.Equal(resp[0].CreatedAt))
}

func TestAdminOrderHandler_TopSelling(t *testing.T) {
	t.Parallel()

	t.Run("success keeps ranking order", func(t *testing.T) {
		t.Parallel()
		uc := &mockAnalyticsUsecase{TopSellingProductsFunc: func(context.Context) ([]entity.ProductSales, error) {
			return []entity.ProductSales{
				{ProductID: 7, ProductName: "Tea", SalesCount: 9},
				{ProductID: 1, ProductName: "Cup", SalesCount: 4},
			}, nil
		}}
		w := do(setupAdminRouter(uc), http.MethodGet, "/admin/products/top-selling", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"productId":7,"productName":"Tea"},{"productId":1,"productName":"Cup"}]`, w.Body.String())
	})

	t.Run("failure returns 500", func(t *testing.T) {
		t.Parallel()
		uc := &mockAnalyticsUsecase{TopSellingProductsFunc: func(context.Context) ([]entity.ProductSales, error) {
			return nil, errors.New("db down")
		}}
		w := do(setupAdminRouter(uc), http.MethodGet, "/admin/products/top-selling", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
