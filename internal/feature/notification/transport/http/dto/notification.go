// Package dto defines data transfer objects for the notification HTTP API.
package dto

import "time"

// SendNotificationRequest は管理者が任意のユーザーへ通知を送る際のリクエストです。
type SendNotificationRequest struct {
	UserID  uint   `json:"userId" binding:"required,gt=0"`
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type NotificationResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
