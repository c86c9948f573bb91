package extension_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/indexops/adminkit/core/command"
	"github.com/indexops/adminkit/core/extension"
)

func TestPreventDuplicates(t *testing.T) {
	t.Parallel()

	t.Run("delegates when no execution of the kind is in progress", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("AnyInProgress", mock.Anything, "test_command").Return(false, nil).Once()

		var inner command.Command[string] = command.Func[string](func(ctx context.Context) (string, error) {
			return "done", nil
		})

		ctx := identifiedContext(uuid.New(), "test_command")
		out, err := command.Stack(inner, extension.PreventDuplicates[string](store)).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "done", out)
		store.AssertExpectations(t)
	})

	t.Run("refuses to start a duplicate execution", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("AnyInProgress", mock.Anything, "test_command").Return(true, nil).Once()

		executed := false
		var inner command.Command[string] = command.Func[string](func(ctx context.Context) (string, error) {
			executed = true
			return "done", nil
		})

		ctx := identifiedContext(uuid.New(), "test_command")
		_, err := command.Stack(inner, extension.PreventDuplicates[string](store)).Execute(ctx)
		require.ErrorIs(t, err, extension.ErrDuplicateExecution)
		require.ErrorIs(t, err, extension.ErrExtensionFailed)
		assert.Contains(t, err.Error(), "test_command")
		assert.False(t, executed)
		store.AssertExpectations(t)
	})

	t.Run("requires a command kind in the context", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)

		var inner command.Command[string] = command.Func[string](func(ctx context.Context) (string, error) {
			return "done", nil
		})

		_, err := command.Stack(inner, extension.PreventDuplicates[string](store)).Execute(context.Background())
		require.ErrorIs(t, err, extension.ErrContext)
		require.ErrorIs(t, err, command.ErrValueNotFound)
		store.AssertNotCalled(t, "AnyInProgress", mock.Anything, mock.Anything)
	})

	t.Run("wraps datastore failures", func(t *testing.T) {
		t.Parallel()

		storeErr := errors.New("connection reset")
		store := new(MockStore)
		store.On("AnyInProgress", mock.Anything, "test_command").Return(false, storeErr).Once()

		var inner command.Command[string] = command.Func[string](func(ctx context.Context) (string, error) {
			return "done", nil
		})

		ctx := identifiedContext(uuid.New(), "test_command")
		_, err := command.Stack(inner, extension.PreventDuplicates[string](store)).Execute(ctx)
		require.ErrorIs(t, err, extension.ErrDatastore)
		require.ErrorIs(t, err, storeErr)
	})

	t.Run("wraps inner command failures", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("AnyInProgress", mock.Anything, "test_command").Return(false, nil).Once()

		innerErr := errors.New("boom")
		var inner command.Command[string] = command.Func[string](func(ctx context.Context) (string, error) {
			return "", innerErr
		})

		ctx := identifiedContext(uuid.New(), "test_command")
		_, err := command.Stack(inner, extension.PreventDuplicates[string](store)).Execute(ctx)
		require.ErrorIs(t, err, extension.ErrCommandFailed)
		require.ErrorIs(t, err, innerErr)
	})
}
