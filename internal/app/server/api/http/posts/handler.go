package posts

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"postboard/internal/app/server/api/http/httperr"
	"postboard/internal/features/posts/application"
	"postboard/internal/features/posts/domain"
)

type Handler struct {
	service    application.Servicer
	pageLimit  int
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service application.Servicer, pageLimit int, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		pageLimit:  pageLimit,
		log:        log.With(slog.String("handler", "posts_api")),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
}

func (h *Handler) list(ctx context.Context, input *ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = h.pageLimit
	}

	var (
		posts []domain.Post
		err   error
	)
	if input.UserID > 0 {
		posts, err = h.service.LatestPostsByUser(ctx, input.UserID, limit)
	} else {
		posts, err = h.service.LatestPosts(ctx, limit)
	}
	if err != nil {
		h.log.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, httperr.Huma(err)
	}

	if posts == nil {
		posts = []domain.Post{}
	}
	return &ListOutput{Body: ListResponse{Posts: posts, Count: len(posts)}}, nil
}

func (h *Handler) get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	post, err := h.service.Post(ctx, input.ID)
	if err != nil {
		h.log.Error("failed to get post", slog.Int("id", input.ID), slog.String("error", err.Error()))
		return nil, httperr.Huma(err)
	}
	return &GetOutput{Body: post}, nil
}
