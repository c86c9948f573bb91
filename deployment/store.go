package deployment

import "context"

// Store is the persistence boundary for deployment commands.
type Store interface {
	// Search returns the deployments matched by the selector.
	Search(ctx context.Context, sel Selector) ([]Deployment, error)

	// Pause stops indexing for the deployment with the given ID.
	Pause(ctx context.Context, id int64) error

	// Resume restarts indexing for the deployment with the given ID.
	Resume(ctx context.Context, id int64) error
}
