// Package api holds the accessors for the /posts endpoints of the remote API.
package api

import (
	"context"
	"strconv"

	"postboard/internal/core/apiclient"
	"postboard/internal/features/posts/domain"
)

const postsPath = "/posts"

// Fetcher is what the application layer needs from the accessors.
type Fetcher interface {
	FetchPosts(ctx context.Context) ([]domain.Post, error)
	FetchPostsByUser(ctx context.Context, userID int) ([]domain.Post, error)
	FetchPost(ctx context.Context, id int) (domain.Post, error)
}

// Writer covers the mutating endpoints.
type Writer interface {
	CreatePost(ctx context.Context, p domain.NewPost) (domain.Post, error)
	UpdatePost(ctx context.Context, id int, p domain.NewPost) (domain.Post, error)
	PatchPost(ctx context.Context, id int, fields map[string]any) (domain.Post, error)
	DeletePost(ctx context.Context, id int) error
}

type Posts struct {
	client *apiclient.Client
}

func New(client *apiclient.Client) *Posts {
	return &Posts{client: client}
}

func (p *Posts) FetchPosts(ctx context.Context) ([]domain.Post, error) {
	return apiclient.Get[[]domain.Post](ctx, p.client, postsPath)
}

func (p *Posts) FetchPostsByUser(ctx context.Context, userID int) ([]domain.Post, error) {
	return apiclient.Get[[]domain.Post](ctx, p.client, postsPath+"?userId="+strconv.Itoa(userID))
}

func (p *Posts) FetchPost(ctx context.Context, id int) (domain.Post, error) {
	return apiclient.Get[domain.Post](ctx, p.client, postPath(id))
}

func (p *Posts) CreatePost(ctx context.Context, in domain.NewPost) (domain.Post, error) {
	return apiclient.Post[domain.Post](ctx, p.client, postsPath, in)
}

func (p *Posts) UpdatePost(ctx context.Context, id int, in domain.NewPost) (domain.Post, error) {
	return apiclient.Put[domain.Post](ctx, p.client, postPath(id), in)
}

func (p *Posts) PatchPost(ctx context.Context, id int, fields map[string]any) (domain.Post, error) {
	return apiclient.Patch[domain.Post](ctx, p.client, postPath(id), fields)
}

// DeletePost discards whatever the API echoes back on delete.
func (p *Posts) DeletePost(ctx context.Context, id int) error {
	_, err := apiclient.Delete[map[string]any](ctx, p.client, postPath(id))
	return err
}

func postPath(id int) string {
	return postsPath + "/" + strconv.Itoa(id)
}
