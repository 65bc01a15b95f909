// Package handler はnotificationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/notification/domain/entity"
	"shop_backend/internal/feature/notification/transport/http/dto"
	"shop_backend/internal/feature/notification/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

// NotificationUsecase は通知の送信と受信箱操作のユースケースです。
type NotificationUsecase interface {
	Send(ctx context.Context, userID uint, title, content string) (*entity.Notification, error)
	List(ctx context.Context, userID uint) ([]entity.Notification, error)
	MarkAllRead(ctx context.Context, userID uint) (int64, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type NotificationHandler struct {
	uc NotificationUsecase
}

func NewNotificationHandler(uc NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List は GET /notifications を処理します。
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	list, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, "list notifications failed", err)
		return
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toResponse(n))
	}
	c.JSON(http.StatusOK, out)
}

// UnreadCount は GET /notifications/unread-count を処理します。
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.uc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		fail(c, "count unread notifications failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Unread: n})
}

// MarkAllRead は PUT /notifications/read を処理します。
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.uc.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		fail(c, "mark notifications read failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{Updated: n})
}

// Send は POST /admin/notifications を処理します。
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("notification validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.BindingError(err))
		return
	}
	n, err := h.uc.Send(c.Request.Context(), req.UserID, req.Title, req.Content)
	if err != nil {
		fail(c, "send notification failed", err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(*n))
}

func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
	}
	return userID, ok
}

func fail(c *gin.Context, msg string, err error) {
	if errors.Is(err, usecase.ErrInvalidNotification) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}

func toResponse(n entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
