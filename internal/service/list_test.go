package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListService_Items(t *testing.T) {
	ctx := context.Background()
	svc := NewListService()

	t.Run("returns the fixed sequence in order", func(t *testing.T) {
		assert.Equal(t, []string{"apples", "bananas", "cherries"}, svc.Items(ctx))
	})

	t.Run("idempotent across calls", func(t *testing.T) {
		first := svc.Items(ctx)
		second := svc.Items(ctx)

		assert.Equal(t, first, second)
	})

	t.Run("callers cannot mutate the sequence", func(t *testing.T) {
		items := svc.Items(ctx)
		items[1] = "mutated"

		assert.Equal(t, []string{"apples", "bananas", "cherries"}, svc.Items(ctx))
	})
}
