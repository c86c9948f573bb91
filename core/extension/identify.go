package extension

import (
	"context"

	"github.com/google/uuid"

	"github.com/indexops/adminkit/core/command"
)

// Identify stamps an execution with a fresh execution ID and the given
// command kind before any inner layer runs, then delegates unchanged.
// Layers that read either value must sit inside this one.
func Identify[O any](kind string) command.Layer[O, O] {
	executionID := ExecutionID(uuid.New())

	return func(inner command.Command[O]) command.Command[O] {
		return command.Func[O](func(ctx context.Context) (O, error) {
			ctx = command.Extend(ctx, executionID)
			ctx = command.Extend(ctx, CommandKind(kind))

			return inner.Execute(ctx)
		})
	}
}
