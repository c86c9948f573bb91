package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexops/adminkit/core/command"
)

type contextValueA int

type contextValueB int

func TestContextValue(t *testing.T) {
	t.Parallel()

	t.Run("absent values are not found", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()

		_, err := command.Value[contextValueA](ctx)
		require.ErrorIs(t, err, command.ErrValueNotFound)
		assert.Contains(t, err.Error(), "contextValueA")

		_, err = command.Value[contextValueB](ctx)
		require.ErrorIs(t, err, command.ErrValueNotFound)
	})

	t.Run("distinct types are stored independently", func(t *testing.T) {
		t.Parallel()

		ctx := command.Extend(context.Background(), contextValueA(1))
		ctx = command.Extend(ctx, contextValueB(2))

		a, err := command.Value[contextValueA](ctx)
		require.NoError(t, err)
		assert.Equal(t, contextValueA(1), a)

		b, err := command.Value[contextValueB](ctx)
		require.NoError(t, err)
		assert.Equal(t, contextValueB(2), b)
	})

	t.Run("same type overwrites", func(t *testing.T) {
		t.Parallel()

		ctx := command.Extend(context.Background(), contextValueA(1))
		ctx = command.Extend(ctx, contextValueA(2))

		a, err := command.Value[contextValueA](ctx)
		require.NoError(t, err)
		assert.Equal(t, contextValueA(2), a)
	})
}
