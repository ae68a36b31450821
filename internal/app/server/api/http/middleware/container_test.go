package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	c := NewContainer()
	c.Add(noop, noop)

	got := c.GetAllAndClear()
	assert.Len(t, got, 2)
	assert.Empty(t, c.Middlewares)

	c.Add(noop)
	assert.Len(t, c.GetAllAndClear(), 1)
}
