// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
)

// ProductUsecase は商品カタログのユースケースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ProductUsecase interface {
	Create(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uint, in usecase.ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Latest(ctx context.Context, limit int) ([]entity.Product, error)
}

// ProductHandler は商品に関するHTTPリクエストを処理します。
type ProductHandler struct {
	uc ProductUsecase
}

// NewProductHandler は新しい ProductHandler を作成します。
func NewProductHandler(uc ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List は GET /products を処理します。
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list products failed", err)
		return
	}
	c.JSON(http.StatusOK, toResponses(products))
}

// Get は GET /products/:id を処理します。
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get product failed", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(*p))
}

// Latest は GET /admin/products/latest?limit=N を処理します。
func (h *ProductHandler) Latest(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}
	products, err := h.uc.Latest(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "latest products failed", err)
		return
	}
	c.JSON(http.StatusOK, toResponses(products))
}

// Create は POST /products を処理します (管理者のみ)。
func (h *ProductHandler) Create(c *gin.Context) {
	in, ok := bindInput(c)
	if !ok {
		return
	}
	p, err := h.uc.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "create product failed", err)
		return
	}
	slog.Info("product created", "product_id", p.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, toResponse(*p))
}

// Update は PUT /products/:id を処理します (管理者のみ)。
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindInput(c)
	if !ok {
		return
	}
	if _, err := h.uc.Update(c.Request.Context(), id, in); err != nil {
		h.fail(c, "update product failed", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "product updated"})
}

// Delete は DELETE /products/:id を処理します (管理者のみ)。
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "delete product failed", err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "product deleted"})
}

// fail はユースケースのエラーをステータスコードへ変換します。原因はログのみに出力します。
func (h *ProductHandler) fail(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidProduct):
		slog.Warn(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrProductNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "product not found"})
	default:
		slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func bindInput(c *gin.Context) (usecase.ProductInput, bool) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("product validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return usecase.ProductInput{}, false
	}
	return usecase.ProductInput{
		Name:        req.Name,
		Price:       decimal.NewFromFloat(*req.Price),
		Description: req.Description,
		Image:       req.Image,
	}, true
}

func toResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.InexactFloat64(),
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
	}
}

func toResponses(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	return out
}
