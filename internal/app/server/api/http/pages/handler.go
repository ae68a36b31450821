// Package pages serves the HTML entrypoints. Each route calls one
// application accessor and hands the result straight to presentation.
package pages

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"postboard/internal/app/server/api/http/httperr"
	"postboard/internal/features/posts/application"
	"postboard/internal/features/posts/domain"
	"postboard/internal/features/posts/presentation"
)

type Handler struct {
	service   application.Servicer
	homeLimit int
	pageLimit int
	log       *slog.Logger
}

func NewHandler(service application.Servicer, homeLimit, pageLimit int, log *slog.Logger) *Handler {
	return &Handler{
		service:   service,
		homeLimit: homeLimit,
		pageLimit: pageLimit,
		log:       log.With(slog.String("handler", "pages")),
	}
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/posts", h.list)
	r.Get("/posts/{id}", h.post)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.LatestPosts(r.Context(), h.homeLimit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, func(buf *bytes.Buffer) error {
		return presentation.PostsList(buf, "Latest posts", posts)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limit := h.pageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(w, r, domain.ErrInvalidLimit)
			return
		}
		limit = n
	}

	posts, err := h.service.LatestPosts(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, func(buf *bytes.Buffer) error {
		return presentation.PostsList(buf, "Posts", posts)
	})
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, domain.ErrInvalidID)
		return
	}

	post, err := h.service.Post(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.render(w, r, func(buf *bytes.Buffer) error {
		return presentation.PostDetail(buf, post)
	})
}

// render buffers the page so a template error never leaves a half-written 200.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.log.Error("render failed", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := httperr.Status(err)
	h.log.Error("page request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	http.Error(w, err.Error(), status)
}
