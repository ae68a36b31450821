package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/exp/slog"
)

// Get запрашивает endpoint и декодирует JSON-ответ в T
func Get[T any](ctx context.Context, c *Client, endpoint string, opts ...Option) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodGet, Endpoint: endpoint, Options: opts})
}

// Post отправляет body в формате JSON
func Post[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...Option) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodPost, Endpoint: endpoint, Body: body, Options: opts})
}

// Put заменяет ресурс целиком
func Put[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...Option) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodPut, Endpoint: endpoint, Body: body, Options: opts})
}

// Patch частично обновляет ресурс
func Patch[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...Option) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodPatch, Endpoint: endpoint, Body: body, Options: opts})
}

// Delete удаляет ресурс
func Delete[T any](ctx context.Context, c *Client, endpoint string, opts ...Option) (T, error) {
	return Do[T](ctx, c, Request{Method: MethodDelete, Endpoint: endpoint, Options: opts})
}

// Do issues one request and normalizes the outcome. Transport and decode
// errors are returned as they come; non-2xx statuses become *Error.
func Do[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var result T

	o := buildOptions(r.Options)
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	resp, err := c.doRequest(ctx, r, o)
	if err != nil {
		return result, err
	}

	body, err := c.readResponse(resp)
	if err != nil {
		return result, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return result, newError(resp, body)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (c *Client) doRequest(ctx context.Context, r Request, o *requestOptions) (*http.Response, error) {
	var reqBody io.Reader
	if r.Body != nil {
		jsonData, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	method := r.Method
	if method == "" {
		method = MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, string(method), c.baseURL+r.Endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range o.headers {
		req.Header.Set(k, v)
	}

	c.log.Debug("sending request",
		slog.String("method", string(method)),
		slog.String("url", req.URL.String()),
	)

	return c.client.Do(req)
}

func (c *Client) readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.Debug("response received",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return body, nil
}
