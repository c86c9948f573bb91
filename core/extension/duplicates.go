package extension

import (
	"context"
	"fmt"

	"github.com/indexops/adminkit/core/command"
)

// PreventDuplicates refuses to start a command while another execution of
// the same kind is in progress. The check and the eventual insert are not
// atomic at this level; stores that need a hard guarantee should enforce a
// per-kind uniqueness constraint on in-progress records.
func PreventDuplicates[O any](store Store) command.Layer[O, O] {
	const name = "PreventDuplicates"

	return func(inner command.Command[O]) command.Command[O] {
		return command.Func[O](func(ctx context.Context) (O, error) {
			var zero O

			kind, err := command.Value[CommandKind](ctx)
			if err != nil {
				return zero, contextErr(name, err)
			}

			inProgress, err := store.AnyInProgress(ctx, string(kind))
			if err != nil {
				return zero, datastoreErr(name, err)
			}
			if inProgress {
				return zero, fmt.Errorf("%s: %w: %w: other executions of kind %q are in progress",
					name, ErrExtensionFailed, ErrDuplicateExecution, string(kind))
			}

			out, err := inner.Execute(ctx)
			if err != nil {
				return zero, commandErr(name, err)
			}
			return out, nil
		})
	}
}
