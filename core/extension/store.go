package extension

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status tracks the lifecycle state of a command execution.
// An execution starts in progress and ends in exactly one terminal state.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusFailed     Status = "failed"
	StatusSucceeded  Status = "succeeded"
)

// timeoutMessage is recorded as the failure reason for executions that are
// timed out or reaped as broken.
const timeoutMessage = "Timeout"

// ErrExecutionNotFound is returned by Store.Get for unknown execution IDs.
var ErrExecutionNotFound = errors.New("execution not found")

// Execution is the persisted audit record of one command run. Once
// CompletedAt is set the record is terminal and no longer mutated.
type Execution struct {
	ID            uuid.UUID       `json:"id"`
	Kind          string          `json:"kind"`
	Status        Status          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	CommandOutput json.RawMessage `json:"command_output,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// Store is the persistence boundary used by the tracking-related
// extensions to record and query command executions.
type Store interface {
	// Register creates a new in-progress execution record.
	Register(ctx context.Context, id uuid.UUID, kind string) error

	// Get returns the full execution record, or ErrExecutionNotFound.
	Get(ctx context.Context, id uuid.UUID) (Execution, error)

	// AnyInProgress reports whether any execution of the given kind is
	// currently in progress.
	AnyInProgress(ctx context.Context, kind string) (bool, error)

	// Heartbeat records that a non-completed execution is still in
	// progress. It is called repeatedly at an interval while the command
	// runs; completed executions are left untouched.
	Heartbeat(ctx context.Context, id uuid.UUID) error

	// Fail marks an execution as failed with the given message.
	// Completed executions are left untouched.
	Fail(ctx context.Context, id uuid.UUID, errorMessage string) error

	// Succeed marks an execution as succeeded and stores the serialized
	// command output. Completed executions are left untouched.
	Succeed(ctx context.Context, id uuid.UUID, output json.RawMessage) error

	// ReapBroken marks in-progress executions of the given kind as failed
	// with a timeout message when they have shown no activity for longer
	// than maxInactive. A killed process can otherwise leave its
	// execution in progress forever, blocking new ones from starting.
	ReapBroken(ctx context.Context, kind string, maxInactive time.Duration) error
}
