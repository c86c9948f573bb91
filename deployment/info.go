package deployment

import (
	"context"

	"github.com/indexops/adminkit/core/command"
)

// Info returns the deployments matched by the selector, restricted by the
// version filter.
func Info(store Store, sel Selector, versions VersionFilter) command.Command[[]Deployment] {
	return command.Func[[]Deployment](func(ctx context.Context) ([]Deployment, error) {
		deployments, err := store.Search(ctx, sel)
		if err != nil {
			return nil, err
		}

		filtered := make([]Deployment, 0, len(deployments))
		for _, d := range deployments {
			if versions.Matches(d.VersionStatus) {
				filtered = append(filtered, d)
			}
		}
		return filtered, nil
	})
}
