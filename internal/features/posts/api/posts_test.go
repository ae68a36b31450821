package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/core/apiclient"
	"postboard/internal/features/posts/domain"
)

type fakeAPI struct {
	t      *testing.T
	method string
	uri    string
	body   []byte
}

func (f *fakeAPI) server(status int, reply string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.method = r.Method
		f.uri = r.RequestURI
		f.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	f.t.Cleanup(srv.Close)
	return srv
}

func newPosts(t *testing.T, status int, reply string) (*Posts, *fakeAPI) {
	f := &fakeAPI{t: t}
	srv := f.server(status, reply)
	return New(apiclient.NewClient(srv.URL)), f
}

func TestPosts_FetchPosts(t *testing.T) {
	p, f := newPosts(t, http.StatusOK, `[{"id":1,"title":"t","body":"b","userId":1},{"id":2,"title":"u","body":"c","userId":1}]`)

	posts, err := p.FetchPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/posts", f.uri)
	assert.Equal(t, []domain.Post{
		{ID: 1, Title: "t", Body: "b", UserID: 1},
		{ID: 2, Title: "u", Body: "c", UserID: 1},
	}, posts)
}

func TestPosts_FetchPostsByUser(t *testing.T) {
	p, f := newPosts(t, http.StatusOK, `[]`)

	posts, err := p.FetchPostsByUser(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "/posts?userId=3", f.uri)
	assert.Empty(t, posts)
}

func TestPosts_FetchPost(t *testing.T) {
	p, f := newPosts(t, http.StatusOK, `{"id":9,"title":"nine","body":"b","userId":2}`)

	post, err := p.FetchPost(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, "/posts/9", f.uri)
	assert.Equal(t, 9, post.ID)
	assert.Equal(t, "nine", post.Title)
}

func TestPosts_FetchPost_NotFound(t *testing.T) {
	p, _ := newPosts(t, http.StatusNotFound, `{}`)

	_, err := p.FetchPost(context.Background(), 1000)

	require.Error(t, err)
	assert.EqualError(t, err, "API Error: 404 Not Found")
}

func TestPosts_Writes(t *testing.T) {
	in := domain.NewPost{Title: "x", Body: "y", UserID: 1}
	inJSON, _ := json.Marshal(in)

	tests := []struct {
		name       string
		call       func(p *Posts) error
		wantMethod string
		wantURI    string
		wantBody   string
	}{
		{
			name: "create",
			call: func(p *Posts) error {
				_, err := p.CreatePost(context.Background(), in)
				return err
			},
			wantMethod: http.MethodPost,
			wantURI:    "/posts",
			wantBody:   string(inJSON),
		},
		{
			name: "update",
			call: func(p *Posts) error {
				_, err := p.UpdatePost(context.Background(), 4, in)
				return err
			},
			wantMethod: http.MethodPut,
			wantURI:    "/posts/4",
			wantBody:   string(inJSON),
		},
		{
			name: "patch",
			call: func(p *Posts) error {
				_, err := p.PatchPost(context.Background(), 4, map[string]any{"title": "z"})
				return err
			},
			wantMethod: http.MethodPatch,
			wantURI:    "/posts/4",
			wantBody:   `{"title":"z"}`,
		},
		{
			name: "delete",
			call: func(p *Posts) error {
				return p.DeletePost(context.Background(), 4)
			},
			wantMethod: http.MethodDelete,
			wantURI:    "/posts/4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, f := newPosts(t, http.StatusOK, `{"id":4}`)

			require.NoError(t, tt.call(p))
			assert.Equal(t, tt.wantMethod, f.method)
			assert.Equal(t, tt.wantURI, f.uri)
			if tt.wantBody == "" {
				assert.Empty(t, f.body)
			} else {
				assert.JSONEq(t, tt.wantBody, string(f.body))
			}
		})
	}
}
