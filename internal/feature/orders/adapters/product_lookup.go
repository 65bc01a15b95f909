package adapters

import (
	"context"

	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
)

// CatalogReader is the catalog capability orders depend on.
type CatalogReader interface {
	FindByIDs(ctx context.Context, ids []uint) ([]catalogentity.Product, error)
}

// productLookup adapts the catalog to the orders ProductLookup port.
type productLookup struct {
	catalog CatalogReader
}

var _ usecase.ProductLookup = (*productLookup)(nil)

func NewProductLookup(catalog CatalogReader) *productLookup {
	return &productLookup{catalog: catalog}
}

func (l *productLookup) FindByIDs(ctx context.Context, ids []uint) ([]entity.ProductSnapshot, error) {
	products, err := l.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]entity.ProductSnapshot, 0, len(products))
	for _, p := range products {
		out = append(out, entity.ProductSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Image:       p.Image,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return out, nil
}
