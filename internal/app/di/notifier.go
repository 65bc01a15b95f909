package di

import (
	notificationadapters "shop_backend/internal/feature/notification/adapters"
	notificationusecase "shop_backend/internal/feature/notification/usecase"
	infrahttp "shop_backend/internal/platform/http"
)

// NewDispatcher creates the outbound notification channel with its own HTTP client.
// Without NOTIFY_WEBHOOK_URL the returned dispatcher does nothing.
func NewDispatcher() notificationusecase.Dispatcher {
	cfg := notificationadapters.LoadWebhookConfigFromEnv()
	return notificationadapters.NewDispatcher(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}
