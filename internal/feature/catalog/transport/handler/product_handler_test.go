package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/feature/catalog/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockProductUsecase struct {
	CreateFunc func(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	UpdateFunc func(ctx context.Context, id uint, in usecase.ProductInput) (*entity.Product, error)
	DeleteFunc func(ctx context.Context, id uint) error
	GetFunc    func(ctx context.Context, id uint) (*entity.Product, error)
	ListFunc   func(ctx context.Context) ([]entity.Product, error)
	LatestFunc func(ctx context.Context, limit int) ([]entity.Product, error)
}

func (m *mockProductUsecase) Create(ctx context.Context, in usecase.ProductInput) (*entity.Product, error) {
	return m.CreateFunc(ctx, in)
}
func (m *mockProductUsecase) Update(ctx context.Context, id uint, in usecase.ProductInput) (*entity.Product, error) {
	return m.UpdateFunc(ctx, id, in)
}
func (m *mockProductUsecase) Delete(ctx context.Context, id uint) error { return m.DeleteFunc(ctx, id) }
func (m *mockProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	return m.GetFunc(ctx, id)
}
func (m *mockProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return m.ListFunc(ctx)
}
func (m *mockProductUsecase) Latest(ctx context.Context, limit int) ([]entity.Product, error) {
	return m.LatestFunc(ctx, limit)
}

func setupRouter(uc ProductUsecase) *gin.Engine {
	h := NewProductHandler(uc)
	r := gin.New()
	r.GET("/products", h.List)
	r.GET("/products/:id", h.Get)
	r.POST("/products", h.Create)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)
	r.GET("/admin/products/latest", h.Latest)
	return r
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		getErr     error
		wantStatus int
	}{
		{"found", "/products/1", nil, http.StatusOK},
		{"not found", "/products/2", usecase.ErrProductNotFound, http.StatusNotFound},
		{"bad id", "/products/abc", nil, http.StatusBadRequest},
		{"store error hidden", "/products/3", errors.New("dial tcp: refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockProductUsecase{GetFunc: func(_ context.Context, id uint) (*entity.Product, error) {
				if tt.getErr != nil {
					return nil, tt.getErr
				}
				return &entity.Product{ID: id, Name: "Tea", Price: decimal.RequireFromString("2.5")}, nil
			}}
			w := do(setupRouter(uc), http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotContains(t, w.Body.String(), "refused")
			if tt.wantStatus == http.StatusOK {
				var got dto.ProductResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, 2.5, got.Price)
			}
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	t.Parallel()

	price := 9.99
	tests := []struct {
		name       string
		body       any
		ucErr      error
		wantStatus int
	}{
		{"created", dto.ProductRequest{Name: "Mug", Price: &price, Description: "d", Image: "m.png"}, nil, http.StatusCreated},
		{"missing price", map[string]any{"name": "Mug", "description": "d", "image": "m.png"}, nil, http.StatusBadRequest},
		{"negative price", map[string]any{"name": "Mug", "price": -1, "description": "d", "image": "m.png"}, nil, http.StatusBadRequest},
		{"usecase validation", dto.ProductRequest{Name: "Mug", Price: &price, Description: "d", Image: "m.png"}, usecase.ErrInvalidProduct, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockProductUsecase{CreateFunc: func(_ context.Context, in usecase.ProductInput) (*entity.Product, error) {
				if tt.ucErr != nil {
					return nil, tt.ucErr
				}
				return &entity.Product{ID: 1, Name: in.Name, Price: in.Price}, nil
			}}
			w := do(setupRouter(uc), http.MethodPost, "/products", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestProductHandler_UpdateDelete(t *testing.T) {
	t.Parallel()

	price := 1.0
	uc := &mockProductUsecase{
		UpdateFunc: func(_ context.Context, id uint, _ usecase.ProductInput) (*entity.Product, error) {
			if id == 404 {
				return nil, usecase.ErrProductNotFound
			}
			return &entity.Product{ID: id}, nil
		},
		DeleteFunc: func(_ context.Context, id uint) error {
			if id == 404 {
				return usecase.ErrProductNotFound
			}
			return nil
		},
	}
	r := setupRouter(uc)
	body := dto.ProductRequest{Name: "n", Price: &price, Description: "d", Image: "i"}

	assert.Equal(t, http.StatusOK, do(r, http.MethodPut, "/products/1", body).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/products/404", body).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/products/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/products/404", nil).Code)
}

func TestProductHandler_Latest(t *testing.T) {
	t.Parallel()

	var gotLimit int
	uc := &mockProductUsecase{LatestFunc: func(_ context.Context, limit int) ([]entity.Product, error) {
		gotLimit = limit
		return []entity.Product{{ID: 3}, {ID: 2}}, nil
	}}
	r := setupRouter(uc)

	w := do(r, http.MethodGet, "/admin/products/latest?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, gotLimit)
	var got []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/admin/products/latest?limit=x", nil).Code)
}

func TestProductHandler_List_Empty(t *testing.T) {
	t.Parallel()

	uc := &mockProductUsecase{ListFunc: func(context.Context) ([]entity.Product, error) { return nil, nil }}
	w := do(setupRouter(uc), http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
