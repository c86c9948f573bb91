package deployment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/indexops/adminkit/core/command"
)

// Resume resumes a previously paused deployment. The output reports whether
// an assigned deployment was found; resuming a deployment that is not
// paused is a no-op that still reports true.
func Resume(store Store, log *slog.Logger, sel Selector) command.Command[bool] {
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

		if !d.Paused {
			log.InfoContext(ctx, "deployment is not paused", slog.String("deployment", d.Name))
			return true, nil
		}

		log.InfoContext(ctx, "resuming deployment", slog.String("deployment", d.Name))

		if err := store.Resume(ctx, d.ID); err != nil {
			return false, fmt.Errorf("resume deployment %q: %w", d.Name, err)
		}

		log.InfoContext(ctx, "successfully resumed deployment", slog.String("deployment", d.Name))
		return true, nil
	})
}
