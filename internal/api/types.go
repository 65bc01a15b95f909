// Package api holds the response envelopes shared by every feature's HTTP handlers.
package api

// ErrorResponse is the body returned for any non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned by mutating endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CountResponse wraps a single counter for admin read-only endpoints.
type CountResponse struct {
	Total int64 `json:"total"`
}
