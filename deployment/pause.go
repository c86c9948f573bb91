package deployment

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/indexops/adminkit/core/command"
)

// Pause pauses a deployment that is not already paused. The output reports
// whether an assigned deployment was found; pausing an already paused
// deployment is a no-op that still reports true.
func Pause(store Store, log *slog.Logger, sel Selector) command.Command[bool] {
	log = orDiscard(log)

	return command.Func[bool](func(ctx context.Context) (bool, error) {
		d, err := locateOne(ctx, store, sel)
		if err != nil {
			return false, err
		}

		if !d.Assigned() {
			log.InfoContext(ctx, "deployment is not assigned to a node", slog.String("deployment", d.Name))
			return false, nil
		}

		if d.Paused {
			log.InfoContext(ctx, "deployment is already paused", slog.String("deployment", d.Name))
			return true, nil
		}

		log.InfoContext(ctx, "pausing deployment", slog.String("deployment", d.Name))

		if err := store.Pause(ctx, d.ID); err != nil {
			return false, fmt.Errorf("pause deployment %q: %w", d.Name, err)
		}

		log.InfoContext(ctx, "successfully paused deployment", slog.String("deployment", d.Name))
		return true, nil
	})
}

// locateOne resolves a selector to exactly one deployment.
func locateOne(ctx context.Context, store Store, sel Selector) (Deployment, error) {
	deployments, err := store.Search(ctx, sel)
	if err != nil {
		return Deployment{}, err
	}

	switch len(deployments) {
	case 0:
		return Deployment{}, ErrNotFound
	case 1:
		return deployments[0], nil
	default:
		return Deployment{}, fmt.Errorf("%w: found %d", ErrAmbiguousSelector, len(deployments))
	}
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return log
}
