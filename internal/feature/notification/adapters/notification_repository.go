// Package adapters はnotificationフィーチャーの永続化と外部配信の実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"shop_backend/internal/feature/notification/domain/entity"
	"shop_backend/internal/feature/notification/usecase"
)

type notificationRepository struct {
	db *gorm.DB
}

var _ usecase.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByUser は新しい順に返します。作成時刻が同じ場合は ID の降順です。
func (r *notificationRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Notification, error) {
	var out []entity.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}
