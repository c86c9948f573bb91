package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/indexops/adminkit/core/extension"
)

// ExecutionStore persists command execution records in PostgreSQL.
// It implements extension.Store.
type ExecutionStore struct {
	db DB
}

// NewExecutionStore creates an execution store over the given database.
func NewExecutionStore(db DB) *ExecutionStore {
	return &ExecutionStore{db: db}
}

// Register creates a new in-progress execution record.
func (s *ExecutionStore) Register(ctx context.Context, id uuid.UUID, kind string) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		INSERT INTO command_executions (id, kind, status, started_at)
		VALUES ($1, $2, $3, now())`,
		id, kind, extension.StatusInProgress)
	if err != nil {
		return fmt.Errorf("register execution: %w", err)
	}
	return nil
}

// Get returns the full execution record.
func (s *ExecutionStore) Get(ctx context.Context, id uuid.UUID) (extension.Execution, error) {
	var e extension.Execution

	row := conn(ctx, s.db).QueryRow(ctx, `
		SELECT id, kind, status, error_message, command_output, started_at, updated_at, completed_at
		FROM command_executions
		WHERE id = $1`,
		id)

	err := row.Scan(&e.ID, &e.Kind, &e.Status, &e.ErrorMessage, &e.CommandOutput, &e.StartedAt, &e.UpdatedAt, &e.CompletedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return extension.Execution{}, fmt.Errorf("%w: %s", extension.ErrExecutionNotFound, id)
	}
	if err != nil {
		return extension.Execution{}, fmt.Errorf("get execution: %w", err)
	}
	return e, nil
}

// AnyInProgress reports whether any execution of the given kind is in progress.
func (s *ExecutionStore) AnyInProgress(ctx context.Context, kind string) (bool, error) {
	var exists bool

	row := conn(ctx, s.db).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM command_executions
			WHERE kind = $1 AND status = $2
		)`,
		kind, extension.StatusInProgress)

	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("check executions in progress: %w", err)
	}
	return exists, nil
}

// Heartbeat updates the activity timestamp of a non-completed execution.
func (s *ExecutionStore) Heartbeat(ctx context.Context, id uuid.UUID) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE command_executions
		SET status = $2, updated_at = now()
		WHERE id = $1 AND completed_at IS NULL`,
		id, extension.StatusInProgress)
	if err != nil {
		return fmt.Errorf("heartbeat execution: %w", err)
	}
	return nil
}

// Fail marks an execution as failed unless it has already completed.
func (s *ExecutionStore) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE command_executions
		SET status = $2, error_message = $3, completed_at = now()
		WHERE id = $1 AND completed_at IS NULL`,
		id, extension.StatusFailed, errorMessage)
	if err != nil {
		return fmt.Errorf("fail execution: %w", err)
	}
	return nil
}

// Succeed marks an execution as succeeded unless it has already completed.
func (s *ExecutionStore) Succeed(ctx context.Context, id uuid.UUID, output json.RawMessage) error {
	_, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE command_executions
		SET status = $2, command_output = $3, completed_at = now()
		WHERE id = $1 AND completed_at IS NULL`,
		id, extension.StatusSucceeded, output)
	if err != nil {
		return fmt.Errorf("succeed execution: %w", err)
	}
	return nil
}

// ReapBroken fails in-progress executions of the given kind whose last
// activity, heartbeat or start, is older than maxInactive.
func (s *ExecutionStore) ReapBroken(ctx context.Context, kind string, maxInactive time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxInactive)

	_, err := conn(ctx, s.db).Exec(ctx, `
		UPDATE command_executions
		SET status = $3, error_message = 'Timeout', completed_at = now()
		WHERE kind = $1
		  AND status = $4
		  AND coalesce(updated_at, started_at) < $2`,
		kind, cutoff, extension.StatusFailed, extension.StatusInProgress)
	if err != nil {
		return fmt.Errorf("reap broken executions: %w", err)
	}
	return nil
}
