package extension

import (
	"context"

	"github.com/google/uuid"

	"github.com/indexops/adminkit/core/command"
)

// ExecuteInBackground detaches the inner command from the caller and
// returns the execution ID as its own output immediately. The detached
// work cannot be cancelled through this API once started; only a Track
// layer stacked inside can stop waiting on it via its timeout.
func ExecuteInBackground[O any]() command.Layer[O, uuid.UUID] {
	const name = "ExecuteInBackground"

	return func(inner command.Command[O]) command.Command[uuid.UUID] {
		return command.Func[uuid.UUID](func(ctx context.Context) (uuid.UUID, error) {
			id, err := command.Value[ExecutionID](ctx)
			if err != nil {
				return uuid.Nil, contextErr(name, err)
			}

			// Detached work must outlive the caller's deadline. Dynamic
			// context values are kept, cancellation is not.
			bg := context.WithoutCancel(ctx)

			go func() {
				_, _ = inner.Execute(bg)
			}()

			return uuid.UUID(id), nil
		})
	}
}
