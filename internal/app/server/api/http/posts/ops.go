package posts

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-posts",
		Method:      http.MethodGet,
		Path:        "/api/v1/posts",
		Summary:     "Latest posts",
		Description: "Fetches posts from the remote API and returns the first N",
		Tags:        []string{"posts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-post",
		Method:      http.MethodGet,
		Path:        "/api/v1/posts/{id}",
		Summary:     "Get post",
		Tags:        []string{"posts"},
		Middlewares: h.middleware,
	}
}
