// Package usecase implements the in-app notification inbox.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/notification/domain/entity"
)

// NotificationRepository abstracts notification persistence.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID uint) ([]entity.Notification, error)
	// MarkAllRead flags every unread notification of the user and returns how many changed.
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

// Dispatcher pushes a stored notification to an external channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, n entity.Notification) error
}

type notificationUsecase struct {
	repo       NotificationRepository
	dispatcher Dispatcher
}

// NewNotificationUsecase は新しい notificationUsecase を生成します。
// dispatcher が nil の場合は外部配信を行いません。
func NewNotificationUsecase(repo NotificationRepository, dispatcher Dispatcher) *notificationUsecase {
	return &notificationUsecase{repo: repo, dispatcher: dispatcher}
}

// Send は通知を保存し、外部チャネルへベストエフォートで配信します。
// 配信の失敗はログに残すだけで、呼び出し元にはエラーを返しません。
func (u *notificationUsecase) Send(ctx context.Context, userID uint, title, content string) (*entity.Notification, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if userID == 0 || title == "" || content == "" {
		return nil, ErrInvalidNotification
	}

	n := &entity.Notification{UserID: userID, Title: title, Content: content}
	if err := u.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	if u.dispatcher != nil {
		if err := u.dispatcher.Dispatch(ctx, *n); err != nil {
			slog.Warn("notification dispatch failed", "notification_id", n.ID, "user_id", userID, "error", err)
		}
	}
	return n, nil
}

func (u *notificationUsecase) List(ctx context.Context, userID uint) ([]entity.Notification, error) {
	if userID == 0 {
		return nil, ErrInvalidNotification
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, ErrInvalidNotification
	}
	return u.repo.MarkAllRead(ctx, userID)
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, ErrInvalidNotification
	}
	return u.repo.CountUnread(ctx, userID)
}

// OrderPlaced は注文確定時に購入者へ通知します。
func (u *notificationUsecase) OrderPlaced(ctx context.Context, userID, orderID uint, total decimal.Decimal) error {
	_, err := u.Send(ctx, userID,
		"Order placed",
		fmt.Sprintf("Your order #%d has been placed. Total: %s", orderID, total.StringFixed(2)))
	return err
}
