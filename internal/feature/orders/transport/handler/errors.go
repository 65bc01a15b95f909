package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/orders/usecase"
)

// writeError はユースケースのエラーをHTTPステータスへ変換します。
// 永続化エラーの詳細はログにのみ出力し、レスポンスには含めません。
func writeError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrProductNotFound):
		slog.Warn(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "order not found"})
	default:
		slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
