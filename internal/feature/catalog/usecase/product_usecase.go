// Package usecase implements the business logic for the product catalog.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/catalog/domain/entity"
)

const (
	// DefaultLatestLimit is the size of the "recently added" list when the caller gives none.
	DefaultLatestLimit = 5
	// MaxLatestLimit caps caller-supplied limits.
	MaxLatestLimit = 50
)

// ProductRepository abstracts product persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	// Update overwrites the mutable fields; returns ErrProductNotFound when no row matched.
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	// ListLatest returns up to limit products, newest first.
	ListLatest(ctx context.Context, limit int) ([]entity.Product, error)
}

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Image       string
}

func (in ProductInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case strings.TrimSpace(in.Description) == "":
		return fmt.Errorf("%w: description is required", ErrInvalidProduct)
	case strings.TrimSpace(in.Image) == "":
		return fmt.Errorf("%w: image is required", ErrInvalidProduct)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidProduct)
	}
	return nil
}

// ProductUsecase provides catalog operations.
type ProductUsecase struct {
	repo ProductRepository
}

// NewProductUsecase creates a new ProductUsecase with the given repository.
func NewProductUsecase(r ProductRepository) *ProductUsecase {
	return &ProductUsecase{repo: r}
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, id uint, in ProductInput) (*entity.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := u.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrProductNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProductUsecase) Get(ctx context.Context, id uint) (*entity.Product, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	return u.repo.FindByID(ctx, id)
}

func (u *ProductUsecase) List(ctx context.Context) ([]entity.Product, error) {
	return u.repo.List(ctx)
}

// Latest returns the most recently added products. limit <= 0 means DefaultLatestLimit.
func (u *ProductUsecase) Latest(ctx context.Context, limit int) ([]entity.Product, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	if limit > MaxLatestLimit {
		limit = MaxLatestLimit
	}
	return u.repo.ListLatest(ctx, limit)
}

// FindByIDs resolves a set of product ids. Duplicates and zero ids are dropped before the lookup.
func (u *ProductUsecase) FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	uniq := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	if len(uniq) == 0 {
		return []entity.Product{}, nil
	}
	return u.repo.FindByIDs(ctx, uniq)
}
