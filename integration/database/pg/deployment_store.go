package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/indexops/adminkit/deployment"
)

// DeploymentStore persists deployments in PostgreSQL.
// It implements deployment.Store.
type DeploymentStore struct {
	db DB
}

// NewDeploymentStore creates a deployment store over the given database.
func NewDeploymentStore(db DB) *DeploymentStore {
	return &DeploymentStore{db: db}
}

// Search returns the deployments matched by the selector.
func (s *DeploymentStore) Search(ctx context.Context, sel deployment.Selector) ([]deployment.Deployment, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, hash, namespace, name, node_id, shard, chain, version_status, is_active, is_paused
		FROM deployments`)

	var (
		clauses []string
		args    []any
	)

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if sel.Name != "" {
		pattern := "%" + strings.ReplaceAll(sel.Name, "%", "") + "%"
		clauses = append(clauses, "name ILIKE "+arg(pattern))
	}
	if sel.Hash != "" {
		clauses = append(clauses, "hash = "+arg(sel.Hash))
		if sel.Shard != "" {
			clauses = append(clauses, "shard = "+arg(sel.Shard))
		}
	}
	if sel.Namespace != "" {
		clauses = append(clauses, "namespace = "+arg(sel.Namespace))
	}

	if len(clauses) > 0 {
		query.WriteString(" WHERE " + strings.Join(clauses, " AND "))
	}
	query.WriteString(" ORDER BY id")

	rows, err := conn(ctx, s.db).Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search deployments: %w", err)
	}
	defer rows.Close()

	var deployments []deployment.Deployment
	for rows.Next() {
		var d deployment.Deployment
		if err := rows.Scan(&d.ID, &d.Hash, &d.Namespace, &d.Name, &d.NodeID, &d.Shard, &d.Chain, &d.VersionStatus, &d.Active, &d.Paused); err != nil {
			return nil, fmt.Errorf("scan deployment: %w", err)
		}
		deployments = append(deployments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search deployments: %w", err)
	}
	return deployments, nil
}

// Pause stops indexing for the deployment with the given ID.
func (s *DeploymentStore) Pause(ctx context.Context, id int64) error {
	_, err := conn(ctx, s.db).Exec(ctx,
		`UPDATE deployments SET is_paused = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pause deployment: %w", err)
	}
	return nil
}

// Resume restarts indexing for the deployment with the given ID.
func (s *DeploymentStore) Resume(ctx context.Context, id int64) error {
	_, err := conn(ctx, s.db).Exec(ctx,
		`UPDATE deployments SET is_paused = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("resume deployment: %w", err)
	}
	return nil
}
