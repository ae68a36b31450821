package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"postboard/internal/core/apiclient"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
	StatusDown     = "DOWN"
	// StatusUnknown - проверка внешнего API не настроена
	StatusUnknown = "UNKNOWN"

	upstreamTimeout = 3 * time.Second
)

// Pinger проверяет доступность внешнего API
type Pinger func(ctx context.Context) error

// UpstreamCheck запрашивает endpoint через шлюз и отбрасывает тело ответа
func UpstreamCheck(client *apiclient.Client, endpoint string) Pinger {
	return func(ctx context.Context) error {
		_, err := apiclient.Get[any](ctx, client, endpoint, apiclient.WithTimeout(upstreamTimeout))
		return err
	}
}

type Handler struct {
	ping       Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(ping Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		ping:       ping,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck всегда отвечает 200: сервис жив, даже если внешний API нет
func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{Status: StatusOK, Upstream: StatusUnknown}
	if h.ping == nil {
		return &Output{Body: resp}, nil
	}

	resp.Upstream = StatusOK
	if err := h.ping(ctx); err != nil {
		h.log.Warn("upstream check failed", slog.String("error", err.Error()))
		resp.Status = StatusDegraded
		resp.Upstream = StatusDown
		resp.Error = err.Error()
	}

	return &Output{Body: resp}, nil
}
