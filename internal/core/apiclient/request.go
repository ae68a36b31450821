package apiclient

import (
	"net/http"
	"time"
)

type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"

	contentTypeJSON = "application/json"
	// CacheNoStore запрещает использовать закэшированный ответ
	CacheNoStore = "no-store"
)

// Request describes one gateway call. Endpoint is appended to the client's
// base URL verbatim. A nil Body means no payload is sent.
type Request struct {
	Method   Method
	Endpoint string
	Body     any
	Options  []Option
}

type requestOptions struct {
	headers map[string]string
	timeout time.Duration
}

// Option is a per-call setting. Options are applied in order on top of the
// defaults, so the last one to touch a setting wins.
type Option func(*requestOptions)

func defaultOptions() *requestOptions {
	return &requestOptions{
		headers: map[string]string{
			HeaderContentType:  contentTypeJSON,
			HeaderCacheControl: CacheNoStore,
		},
	}
}

func buildOptions(opts []Option) *requestOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithHeader sets one outgoing header, replacing the default of the same name.
func WithHeader(name, value string) Option {
	return func(o *requestOptions) {
		o.headers[http.CanonicalHeaderKey(name)] = value
	}
}

// WithHeaders merges headers over the defaults. Caller values win on collision.
func WithHeaders(headers map[string]string) Option {
	return func(o *requestOptions) {
		for k, v := range headers {
			o.headers[http.CanonicalHeaderKey(k)] = v
		}
	}
}

// WithCache overrides the cache directive. The default is no-store.
func WithCache(directive string) Option {
	return WithHeader(HeaderCacheControl, directive)
}

// WithTimeout bounds the call. The gateway imposes no timeout of its own.
func WithTimeout(d time.Duration) Option {
	return func(o *requestOptions) {
		o.timeout = d
	}
}
