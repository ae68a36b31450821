package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"postboard/internal/config"
	"postboard/internal/features/posts/domain"
)

func newApp(t *testing.T, h http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL

	app, err := New(cfg, slog.Default())
	require.NoError(t, err)
	return app
}

func TestApp_LatestPosts(t *testing.T) {
	var uri string
	app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
		uri = r.RequestURI
		_, _ = io.WriteString(w, `[{"id":1},{"id":2},{"id":3}]`)
	})

	posts, err := app.LatestPosts(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "/posts", uri)

	posts, err = app.LatestPosts(context.Background(), 4, 5)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "/posts?userId=4", uri)
}

func TestApp_CheckConnection(t *testing.T) {
	app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"message":"maintenance"}`)
	})

	assert.EqualError(t, app.CheckConnection(context.Background()), "maintenance")
}

func TestApp_CreatePost(t *testing.T) {
	var body []byte
	app := newApp(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":101,"title":"x","body":"y","userId":1}`)
	})

	p, err := app.CreatePost(context.Background(), domain.NewPost{Title: "x", Body: "y", UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, 101, p.ID)
	assert.JSONEq(t, `{"title":"x","body":"y","userId":1}`, string(body))
}

func TestNewWithHTTPClient_NilConfig(t *testing.T) {
	_, err := NewWithHTTPClient(nil, slog.Default(), nil)
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoApp)

	app := &App{}
	got, err := FromContext(WithApp(context.Background(), app))
	require.NoError(t, err)
	assert.Same(t, app, got)
}

// MockWriter is a mock implementation of api.Writer for testing
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) CreatePost(ctx context.Context, p domain.NewPost) (domain.Post, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockWriter) UpdatePost(ctx context.Context, id int, p domain.NewPost) (domain.Post, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockWriter) PatchPost(ctx context.Context, id int, fields map[string]any) (domain.Post, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *MockWriter) DeletePost(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestApp_MutationsGoThroughWriter(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	fields := map[string]any{"title": "new"}

	w := new(MockWriter)
	w.On("UpdatePost", ctx, 3, domain.NewPost{Title: "t"}).Return(domain.Post{ID: 3, Title: "t"}, nil)
	w.On("PatchPost", ctx, 3, fields).Return(domain.Post{ID: 3, Title: "new"}, nil)
	w.On("DeletePost", ctx, 3).Return(boom)
	app := &App{writer: w}

	p, err := app.UpdatePost(ctx, 3, domain.NewPost{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, "t", p.Title)

	p, err = app.PatchPost(ctx, 3, fields)
	require.NoError(t, err)
	assert.Equal(t, "new", p.Title)

	assert.Same(t, boom, app.DeletePost(ctx, 3))
	w.AssertExpectations(t)
}
