// Package apiclient is the single gateway for outbound calls to the remote
// JSON API. Feature accessors call Get, Post, Put, Patch and Delete; nothing
// else in the tree builds HTTP requests to the API directly.
package apiclient

import (
	"net/http"

	"golang.org/x/exp/slog"
)

// Client holds the process-wide settings of the gateway. It carries no
// per-request state and is safe for concurrent use.
type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

type ClientOption func(*Client)

// WithHTTPClient задает транспорт. По умолчанию используется
// http.DefaultClient без таймаута.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithLogger задает логгер для отладочных сообщений о запросах
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient создает шлюз к API. baseURL подставляется перед каждым путем
// простой конкатенацией строк.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		client:  http.DefaultClient,
		log:     slog.Default(),
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(slog.String("component", "api_client"))
	return c
}

// BaseURL returns the configured base endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}
