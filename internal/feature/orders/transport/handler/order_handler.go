// Package handler はordersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/transport/http/dto"
	"shop_backend/internal/feature/orders/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// OrderUsecase は注文の作成・参照・ステータス更新のユースケースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type OrderUsecase interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (uint, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// OrderStats は /orders 配下のカウンタ用ユースケースです。
type OrderStats interface {
	CountOrders(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

// OrderHandler は /orders 配下のHTTPリクエストを処理します。
type OrderHandler struct {
	orders OrderUsecase
	stats  OrderStats
}

// NewOrderHandler は新しい OrderHandler を作成します。
func NewOrderHandler(orders OrderUsecase, stats OrderStats) *OrderHandler {
	return &OrderHandler{orders: orders, stats: stats}
}

// Create は POST /orders を処理します。
// バインドに失敗した場合はストアに触れずに400を返します。
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("order validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.BindingError(err))
		return
	}

	id, err := h.orders.CreateOrder(c.Request.Context(), toCreateInput(req))
	if err != nil {
		writeError(c, "create order failed", err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateOrderResponse{Message: "order placed", OrderID: id})
}

// List は GET /orders を処理します。
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, "list orders failed", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListMine は GET /users/me/orders を処理します (JWT 必須)。
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return
	}
	orders, err := h.orders.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, "list user orders failed", err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus は PUT /orders/:id/status を処理します。
// 該当する注文がなければ (id 0 を含む) 404を返します。数値でない id は400です。
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid order id"})
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.orders.UpdateStatus(c.Request.Context(), uint(id), req.Status); err != nil {
		writeError(c, "update order status failed", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "order status updated"})
}

// Count は GET /orders/count を処理します。
func (h *OrderHandler) Count(c *gin.Context) {
	n, err := h.stats.CountOrders(c.Request.Context())
	if err != nil {
		writeError(c, "count orders failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderCountResponse{TotalOrders: n})
}

// Revenue は GET /orders/revenue を処理します。注文がなければ 0 を返します。
func (h *OrderHandler) Revenue(c *gin.Context) {
	rev, err := h.stats.TotalRevenue(c.Request.Context())
	if err != nil {
		writeError(c, "total revenue failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.RevenueResponse{TotalRevenue: rev.InexactFloat64()})
}

func toCreateInput(req dto.CreateOrderRequest) usecase.CreateOrderInput {
	in := usecase.CreateOrderInput{
		UserID:        req.UserID,
		TotalPrice:    decimal.NewFromFloat(*req.TotalPrice),
		Items:         make([]usecase.ItemInput, 0, len(req.Items)),
		Address:       req.Address,
		PaymentMethod: req.Payment,
		Note:          req.Note,
		DeliveryFee:   decimalPtr(req.DeliveryFee),
		Discount:      decimalPtr(req.OrderDiscount),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, usecase.ItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     decimal.NewFromFloat(*it.Price),
		})
	}
	return in
}

func decimalPtr(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}

func toOrderResponses(orders []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]dto.CartItemResponse, 0, len(o.Lines))
		for _, l := range o.Lines {
			items = append(items, dto.CartItemResponse{
				ID:          l.ProductID,
				Title:       l.ProductName,
				Description: l.ProductDescription,
				Images:      l.ProductImage,
				Quantity:    l.Quantity,
				Price:       l.Price.InexactFloat64(),
			})
		}
		out = append(out, dto.OrderResponse{
			OrderID:       o.ID,
			UserID:        o.UserID,
			NameCustomer:  o.CustomerName,
			TotalPrice:    o.TotalPrice.InexactFloat64(),
			CreatedAt:     o.CreatedAt,
			Status:        string(o.Status),
			ListCartItem:  items,
			Address:       o.Address,
			Payment:       o.PaymentMethod,
			DeliveryFee:   o.DeliveryFee.InexactFloat64(),
			OrderDiscount: o.Discount.InexactFloat64(),
			Note:          o.Note,
		})
	}
	return out
}
