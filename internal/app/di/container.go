package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/app/router"
	authadapters "shop_backend/internal/feature/auth/adapters"
	authentity "shop_backend/internal/feature/auth/domain/entity"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	catalogentity "shop_backend/internal/feature/catalog/domain/entity"
	cataloghandler "shop_backend/internal/feature/catalog/transport/handler"
	catalogusecase "shop_backend/internal/feature/catalog/usecase"
	notificationadapters "shop_backend/internal/feature/notification/adapters"
	notificationentity "shop_backend/internal/feature/notification/domain/entity"
	notificationhandler "shop_backend/internal/feature/notification/transport/handler"
	notificationusecase "shop_backend/internal/feature/notification/usecase"
	orderadapters "shop_backend/internal/feature/orders/adapters"
	orderhandler "shop_backend/internal/feature/orders/transport/handler"
	orderusecase "shop_backend/internal/feature/orders/usecase"
	healthhandler "shop_backend/internal/platform/http/handler"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/shared/envutil"
)

// Models returns every persisted model in foreign key order.
func Models() []any {
	models := []any{&authentity.User{}, &catalogentity.Product{}}
	models = append(models, orderadapters.Models()...)
	return append(models, &notificationentity.Notification{})
}

// Options are the process-level inputs the handlers depend on.
type Options struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	OrderDefaults  orderusecase.Defaults
	Dispatcher     notificationusecase.Dispatcher
	AllowedOrigins []string
}

// LoadOptionsFromEnv reads Options from the environment.
func LoadOptionsFromEnv() Options {
	return Options{
		JWTSecret:      envutil.String(jwtmw.EnvKeyJWTSecret, ""),
		JWTExpiration:  envutil.Duration(jwtmw.EnvKeyJWTExpiration, jwtmw.DefaultExpiration),
		OrderDefaults:  orderusecase.LoadDefaultsFromEnv(),
		Dispatcher:     NewDispatcher(),
		AllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS"),
	}
}

// App is the wired application.
type App struct {
	Handlers router.Handlers
	// Drain blocks until background order notifications have finished.
	Drain func()
}

// NewApp constructs repositories, usecases and handlers in dependency order.
// rdb may be nil, in which case the catalog reads the database directly.
func NewApp(db *gorm.DB, rdb *redis.Client, opts Options) *App {
	// Repository
	userRepo := authadapters.NewUserRepository(db)
	productRepo := NewProductRepository(rdb, db)
	orderRepo := orderadapters.NewOrderRepository(db)
	analyticsRepo := orderadapters.NewAnalyticsRepository(db)
	notificationRepo := notificationadapters.NewNotificationRepository(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(opts.JWTSecret, opts.JWTExpiration))
	productUC := catalogusecase.NewProductUsecase(productRepo)
	notificationUC := notificationusecase.NewNotificationUsecase(notificationRepo, opts.Dispatcher)
	orderUC := orderusecase.NewOrderUsecase(orderRepo, orderadapters.NewProductLookup(productUC), notificationUC, opts.OrderDefaults)
	analyticsUC := orderusecase.NewAnalyticsUsecase(analyticsRepo)

	// Handler
	handlers := router.Handlers{
		Health:       healthhandler.NewHealthHandler(sqlPinger{db: db}, 0),
		Auth:         authhandler.NewAuthHandler(authUC),
		Product:      cataloghandler.NewProductHandler(productUC),
		Order:        orderhandler.NewOrderHandler(orderUC, analyticsUC),
		AdminOrder:   orderhandler.NewAdminOrderHandler(analyticsUC),
		Notification: notificationhandler.NewNotificationHandler(notificationUC),
	}
	return &App{Handlers: handlers, Drain: orderUC.WaitNotifications}
}
