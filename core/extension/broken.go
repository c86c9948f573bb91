package extension

import (
	"context"
	"time"

	"github.com/indexops/adminkit/core/command"
)

// DefaultMaxInactiveTime is how long an in-progress execution may go
// without updates before it is considered broken.
const DefaultMaxInactiveTime = 5 * time.Minute

type brokenConfig struct {
	maxInactiveTime time.Duration
}

// HandleBrokenOption configures the HandleBroken layer.
type HandleBrokenOption func(*brokenConfig)

// WithMaxInactiveTime overrides the broken-execution inactivity threshold.
// Non-positive values are ignored.
func WithMaxInactiveTime(d time.Duration) HandleBrokenOption {
	return func(c *brokenConfig) {
		if d > 0 {
			c.maxInactiveTime = d
		}
	}
}

// HandleBroken marks stale in-progress executions of the command's kind as
// failed before delegating to the inner command. It must run outside
// PreventDuplicates, or abandoned executions would block new ones forever.
func HandleBroken[O any](store Store, opts ...HandleBrokenOption) command.Layer[O, O] {
	const name = "HandleBroken"

	cfg := brokenConfig{maxInactiveTime: DefaultMaxInactiveTime}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(inner command.Command[O]) command.Command[O] {
		return command.Func[O](func(ctx context.Context) (O, error) {
			var zero O

			kind, err := command.Value[CommandKind](ctx)
			if err != nil {
				return zero, contextErr(name, err)
			}

			if err := store.ReapBroken(ctx, string(kind), cfg.maxInactiveTime); err != nil {
				return zero, datastoreErr(name, err)
			}

			out, err := inner.Execute(ctx)
			if err != nil {
				return zero, commandErr(name, err)
			}
			return out, nil
		})
	}
}
