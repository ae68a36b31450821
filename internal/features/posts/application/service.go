package application

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"postboard/internal/features/posts/api"
	"postboard/internal/features/posts/domain"
)

// Servicer is what the entrypoints depend on.
type Servicer interface {
	LatestPosts(ctx context.Context, limit int) ([]domain.Post, error)
	LatestPostsByUser(ctx context.Context, userID, limit int) ([]domain.Post, error)
	Post(ctx context.Context, id int) (domain.Post, error)
}

type Service struct {
	fetcher api.Fetcher
	log     *slog.Logger
}

func NewService(fetcher api.Fetcher, log *slog.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		log:     log.With(slog.String("component", "posts_service")),
	}
}

// LatestPosts fetches all posts and keeps the first limit of them.
func (s *Service) LatestPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}

	posts, err := s.fetcher.FetchPosts(ctx)
	if err != nil {
		return nil, err
	}

	s.log.Debug("posts fetched", slog.Int("total", len(posts)), slog.Int("limit", limit))
	return Latest(posts, limit)
}

func (s *Service) LatestPostsByUser(ctx context.Context, userID, limit int) ([]domain.Post, error) {
	if limit < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if userID <= 0 {
		return nil, fmt.Errorf("user id %d: %w", userID, domain.ErrInvalidID)
	}

	posts, err := s.fetcher.FetchPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Latest(posts, limit)
}

func (s *Service) Post(ctx context.Context, id int) (domain.Post, error) {
	if id <= 0 {
		return domain.Post{}, fmt.Errorf("post id %d: %w", id, domain.ErrInvalidID)
	}
	return s.fetcher.FetchPost(ctx, id)
}

// Latest returns the first n posts in their original order, or all of them
// when there are fewer than n.
func Latest(posts []domain.Post, n int) ([]domain.Post, error) {
	if n < 0 {
		return nil, domain.ErrInvalidLimit
	}
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n:n], nil
}
