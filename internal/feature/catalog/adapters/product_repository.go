// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
)

// productRepository はProductRepositoryのGORM実装です。
type productRepository struct {
	db *gorm.DB
}

var _ usecase.ProductRepository = (*productRepository)(nil)

// NewProductRepository は指定されたDB接続でproductRepositoryを生成します。
func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update は可変カラムのみを更新します。該当行がなければ usecase.ErrProductNotFound。
// updated_at が常に変わるため、値が同一でも MySQL の affected rows は 0 になりません。
func (r *productRepository) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"price":       p.Price,
			"description": p.Description,
			"image":       p.Image,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDs は存在する商品のみを1クエリで返します。
func (r *productRepository) FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	products := []entity.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	products := []entity.Product{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListLatest は作成日時の新しい順 (同時刻は id 降順) に返します。
func (r *productRepository) ListLatest(ctx context.Context, limit int) ([]entity.Product, error) {
	products := []entity.Product{}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
