// Package httperr maps errors that reached an entrypoint to response statuses.
package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"postboard/internal/core/apiclient"
	"postboard/internal/features/posts/domain"
)

// Status picks the status code returned to our own clients.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidLimit), errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	if code, ok := apiclient.StatusCode(err); ok && code == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// Huma converts err into a huma status error with the same mapping as Status.
func Huma(err error) error {
	return huma.NewError(Status(err), err.Error())
}
