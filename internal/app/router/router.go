// Package router assembles the HTTP routes of every feature.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	notificationhandler "shop_backend/internal/feature/notification/transport/handler"
	orderhandler "shop_backend/internal/feature/orders/transport/handler"
	healthhandler "shop_backend/internal/platform/http/handler"
	"shop_backend/internal/platform/http/middleware"
	jwtmw "shop_backend/internal/platform/jwt"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Health       *healthhandler.HealthHandler
	Auth         *authhandler.AuthHandler
	Product      *cataloghandler.ProductHandler
	Order        *orderhandler.OrderHandler
	AdminOrder   *orderhandler.AdminOrderHandler
	Notification *notificationhandler.NotificationHandler
}

// NewRouter builds the engine. An empty allowedOrigins list allows every origin.
func NewRouter(h Handlers, logger *slog.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", h.Health.Liveness)
	r.HEAD("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	// 新規ユーザー登録
	r.POST("/register", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	// 商品カタログ（参照のみ公開）
	r.GET("/products", h.Product.List)
	r.GET("/products/:id", h.Product.Get)

	// 注文パイプライン
	r.POST("/orders", h.Order.Create)
	r.GET("/orders", h.Order.List)
	r.GET("/orders/count", h.Order.Count)
	r.GET("/orders/revenue", h.Order.Revenue)
	r.PUT("/orders/:id/status", h.Order.UpdateStatus)

	// 管理画面向け集計
	r.GET("/admin/orders/analytics", h.AdminOrder.Analytics)
	r.GET("/admin/orders/recent", h.AdminOrder.Recent)
	r.GET("/admin/products/top-selling", h.AdminOrder.TopSelling)
	r.GET("/admin/products/latest", h.Product.Latest)

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/users/me", h.Auth.Profile)
		auth.PUT("/users/me", h.Auth.UpdateProfile)
		auth.PUT("/users/me/avatar", h.Auth.UpdateAvatar)
		auth.GET("/users/me/orders", h.Order.ListMine)

		auth.GET("/notifications", h.Notification.List)
		auth.GET("/notifications/unread-count", h.Notification.UnreadCount)
		auth.PUT("/notifications/read", h.Notification.MarkAllRead)
	}

	// 管理者ロール必須
	admin := auth.Group("/")
	admin.Use(jwtmw.RequireRole(authentity.RoleAdmin))
	{
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)
		admin.GET("/admin/users/count", h.Auth.CountUsers)
		admin.POST("/admin/notifications", h.Notification.Send)
	}

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderXRequestID},
		ExposeHeaders: []string{middleware.HeaderXRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}
