package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"postboard/internal/core/apiclient"
)

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name             string
		ping             Pinger
		expectedStatus   string
		expectedUpstream string
		expectedError    string
	}{
		{
			name:             "no upstream check",
			expectedStatus:   StatusOK,
			expectedUpstream: StatusUnknown,
		},
		{
			name:             "upstream reachable",
			ping:             func(context.Context) error { return nil },
			expectedStatus:   StatusOK,
			expectedUpstream: StatusOK,
		},
		{
			name:             "upstream down",
			ping:             func(context.Context) error { return errors.New("dial tcp: refused") },
			expectedStatus:   StatusDegraded,
			expectedUpstream: StatusDown,
			expectedError:    "dial tcp: refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(tt.ping, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			require.NoError(t, err)
			require.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, tt.expectedUpstream, output.Body.Upstream)
			assert.Equal(t, tt.expectedError, output.Body.Error)
		})
	}
}

func TestUpstreamCheck(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if r.URL.Path == "/posts/1" {
			_, _ = w.Write([]byte(`{"id":1}`))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := apiclient.NewClient(srv.URL)

	assert.NoError(t, UpstreamCheck(client, "/posts/1")(context.Background()))
	assert.Equal(t, "/posts/1", path)
	assert.EqualError(t, UpstreamCheck(client, "/down")(context.Background()), "API Error: 503 Service Unavailable")
}

func TestNewHandler(t *testing.T) {
	// Arrange
	log := slog.Default()
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(nil, log, middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
