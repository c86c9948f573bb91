package deployment

import (
	"context"
	"log/slog"
	"time"

	"github.com/indexops/adminkit/core/command"
)

// DefaultRestartDelay is the pause-to-resume gap used when no delay is
// specified. It gives the indexing node time to fully release the workload
// before it is picked up again.
const DefaultRestartDelay = 20 * time.Second

// Restart pauses a deployment and resumes it after the delay. A
// non-positive delay falls back to DefaultRestartDelay.
func Restart(store Store, log *slog.Logger, sel Selector, delay time.Duration) command.Command[bool] {
	if delay <= 0 {
		delay = DefaultRestartDelay
	}

	return command.Func[bool](func(ctx context.Context) (bool, error) {
		if _, err := Pause(store, log, sel).Execute(ctx); err != nil {
			return false, err
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(delay):
		}

		return Resume(store, log, sel).Execute(ctx)
	})
}
