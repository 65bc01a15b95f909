package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"shop_backend/internal/feature/notification/domain/entity"
	"shop_backend/internal/feature/notification/usecase"
	"shop_backend/internal/shared/envutil"
	"shop_backend/internal/shared/ratelimiter"
)

const (
	EnvKeyWebhookURL       = "NOTIFY_WEBHOOK_URL"
	EnvKeyWebhookTimeout   = "NOTIFY_WEBHOOK_TIMEOUT"
	EnvKeyWebhookRateLimit = "NOTIFY_WEBHOOK_RATE_PER_MINUTE"

	DefaultWebhookTimeout   = 5 * time.Second
	DefaultWebhookRateLimit = 60
)

// WebhookConfig は外部配信先の設定です。URL が空なら配信しません。
type WebhookConfig struct {
	URL           string
	Timeout       time.Duration
	RatePerMinute int
}

// LoadWebhookConfigFromEnv は環境変数から WebhookConfig を読み込みます。
func LoadWebhookConfigFromEnv() WebhookConfig {
	return WebhookConfig{
		URL:           envutil.String(EnvKeyWebhookURL, ""),
		Timeout:       envutil.Duration(EnvKeyWebhookTimeout, DefaultWebhookTimeout),
		RatePerMinute: envutil.Int(EnvKeyWebhookRateLimit, DefaultWebhookRateLimit),
	}
}

// webhookPayload は配信先に POST するJSONです。
type webhookPayload struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// webhookDispatcher は通知を外部URLへJSONでPOSTするDispatcher実装です。
type webhookDispatcher struct {
	url     string
	client  *http.Client
	limiter ratelimiter.Limiter
}

var _ usecase.Dispatcher = (*webhookDispatcher)(nil)

// NewWebhookDispatcher は指定されたURLとHTTPクライアントで webhookDispatcher を生成します。
// limiter が nil の場合は送信頻度を制限しません。
func NewWebhookDispatcher(url string, client *http.Client, limiter ratelimiter.Limiter) *webhookDispatcher {
	return &webhookDispatcher{url: url, client: client, limiter: limiter}
}

func (d *webhookDispatcher) Dispatch(ctx context.Context, n entity.Notification) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("webhook rate limit: %w", err)
		}
	}

	body, err := json.Marshal(webhookPayload{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("webhook http %d", res.StatusCode)
	}
	return nil
}

// noopDispatcher は配信先が未設定のときに使います。
type noopDispatcher struct{}

func (noopDispatcher) Dispatch(context.Context, entity.Notification) error { return nil }

// NewDispatcher は設定に応じて webhookDispatcher か何もしない Dispatcher を返します。
func NewDispatcher(cfg WebhookConfig, client *http.Client) usecase.Dispatcher {
	if cfg.URL == "" {
		return noopDispatcher{}
	}
	var limiter ratelimiter.Limiter
	if cfg.RatePerMinute > 0 {
		limiter = ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute)
	}
	return NewWebhookDispatcher(cfg.URL, client, limiter)
}
