package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout は呼び出し元が 0 以下を渡した場合のリクエスト全体タイムアウトです。
const DefaultTimeout = 5 * time.Second

// NewHTTPClient は外向き通知 (Webhook 等) 用のHTTPクライアントを作成します。
//
// http.DefaultClient にはタイムアウトがないため、常にこのクライアントを使うこと。
// Transport は接続の再利用とハンドシェイク時間の上限を明示的に設定しています。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
