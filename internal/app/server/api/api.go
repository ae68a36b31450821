// GET  /                   # Последние посты (HTML)
// GET  /posts              # Список постов, ?limit=N (HTML)
// GET  /posts/{id}         # Один пост (HTML)
// GET  /api/v1/health      # Состояние сервиса и внешнего API
// GET  /api/v1/posts       # Последние посты (JSON), ?limit=N&userId=M
// GET  /api/v1/posts/{id}  # Один пост (JSON)
// GET  /metrics            # Prometheus

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	healthAPI "postboard/internal/app/server/api/http/health"
	"postboard/internal/app/server/api/http/middleware"
	"postboard/internal/app/server/api/http/middleware/logger"
	"postboard/internal/app/server/api/http/middleware/requestid"
	"postboard/internal/app/server/api/http/pages"
	postsAPI "postboard/internal/app/server/api/http/posts"
	"postboard/internal/core/metrics"
	"postboard/internal/features/posts/application"
)

// Deps - все, что нужно роутеру. Metrics и Upstream необязательны.
type Deps struct {
	Posts     application.Servicer
	Upstream  healthAPI.Pinger
	Metrics   *metrics.Metrics
	HomeLimit int
	PageLimit int
	Log       *slog.Logger
}

type Handlers struct {
	Health *healthAPI.Handler
	Posts  *postsAPI.Handler
	Pages  *pages.Handler
}

// New создает *chi.Mux с HTML-страницами и JSON API через huma.Register
func New(d Deps) *chi.Mux {
	mux := chi.NewMux()

	mux.Use(requestid.Middleware)
	if d.Metrics != nil {
		mux.Use(d.Metrics.InstrumentHandler)
		mux.Handle("/metrics", d.Metrics.Handler())
	}

	config := huma.DefaultConfig("Postboard API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(d)
	h.Health.SetupRoutes(API)
	h.Posts.SetupRoutes(API)
	h.Pages.SetupRoutes(mux)

	return mux
}

func handlers(d Deps) *Handlers {
	loggerMW := logger.New(d.Log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(d.Upstream, d.Log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	postsHandler := postsAPI.NewHandler(d.Posts, d.PageLimit, d.Log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Posts:  postsHandler,
		Pages:  pages.NewHandler(d.Posts, d.HomeLimit, d.PageLimit, d.Log),
	}
}
