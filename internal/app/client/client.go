package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"postboard/internal/config"
	"postboard/internal/core/apiclient"
	"postboard/internal/features/posts/api"
	"postboard/internal/features/posts/application"
	"postboard/internal/features/posts/domain"
)

const connectionCheckTimeout = 5 * time.Second

var ErrNoApp = errors.New("приложение не инициализировано")

// App связывает шлюз, аксессоры и сервис постов для команд CLI
type App struct {
	config  *config.Config
	log     *slog.Logger
	client  *apiclient.Client
	writer  api.Writer
	service *application.Service
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	return NewWithHTTPClient(cfg, log, &http.Client{})
}

// NewWithHTTPClient позволяет подменить транспорт (например, в тестах)
func NewWithHTTPClient(cfg *config.Config, log *slog.Logger, hc *http.Client) (*App, error) {
	if cfg == nil {
		return nil, errors.New("конфигурация не задана")
	}

	client := apiclient.NewClient(cfg.API.BaseURL,
		apiclient.WithHTTPClient(hc),
		apiclient.WithLogger(log),
	)
	posts := api.New(client)

	return &App{
		config:  cfg,
		log:     log,
		client:  client,
		writer:  posts,
		service: application.NewService(posts, log),
	}, nil
}

// BaseURL возвращает адрес внешнего API
func (a *App) BaseURL() string {
	return a.client.BaseURL()
}

// CheckConnection проверяет доступность внешнего API
func (a *App) CheckConnection(ctx context.Context) error {
	_, err := apiclient.Get[domain.Post](ctx, a.client, "/posts/1", apiclient.WithTimeout(connectionCheckTimeout))
	return err
}

// LatestPosts возвращает первые limit постов, при userID > 0 - только постов пользователя
func (a *App) LatestPosts(ctx context.Context, userID, limit int) ([]domain.Post, error) {
	if userID > 0 {
		return a.service.LatestPostsByUser(ctx, userID, limit)
	}
	return a.service.LatestPosts(ctx, limit)
}

func (a *App) Post(ctx context.Context, id int) (domain.Post, error) {
	return a.service.Post(ctx, id)
}

func (a *App) CreatePost(ctx context.Context, p domain.NewPost) (domain.Post, error) {
	return a.writer.CreatePost(ctx, p)
}

func (a *App) UpdatePost(ctx context.Context, id int, p domain.NewPost) (domain.Post, error) {
	return a.writer.UpdatePost(ctx, id, p)
}

func (a *App) PatchPost(ctx context.Context, id int, fields map[string]any) (domain.Post, error) {
	return a.writer.PatchPost(ctx, id, fields)
}

func (a *App) DeletePost(ctx context.Context, id int) error {
	return a.writer.DeletePost(ctx, id)
}

type contextKey string

const appKey contextKey = "app"

// WithApp кладет приложение в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// FromContext достает приложение из контекста команды
func FromContext(ctx context.Context) (*App, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	app, ok := ctx.Value(appKey).(*App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
