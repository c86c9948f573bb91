package extension

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/indexops/adminkit/core/command"
)

// DefaultHeartbeatInterval is how often a tracked execution reports that it
// is still in progress. It must stay well below any broken-execution
// inactivity threshold, or peers will reap live executions.
const DefaultHeartbeatInterval = 10 * time.Second

type trackConfig struct {
	maxExecutionTime  time.Duration
	heartbeatInterval time.Duration
}

// TrackOption configures the Track layer.
type TrackOption func(*trackConfig)

// WithMaxExecutionTime bounds how long a tracked command may run before its
// execution is recorded as timed out. The default is unbounded because
// commands differ too much for a single cutoff. Non-positive values are
// ignored.
func WithMaxExecutionTime(d time.Duration) TrackOption {
	return func(c *trackConfig) {
		if d > 0 {
			c.maxExecutionTime = d
		}
	}
}

// WithHeartbeatInterval overrides the heartbeat interval.
// Non-positive values are ignored.
func WithHeartbeatInterval(d time.Duration) TrackOption {
	return func(c *trackConfig) {
		if d > 0 {
			c.heartbeatInterval = d
		}
	}
}

// Track records the full lifecycle of an execution: it registers an
// in-progress record before the inner command starts, heartbeats while the
// command runs, and finalizes the record exactly once with the serialized
// output, the error message, or a timeout.
//
// The inner command, the timeout, and the heartbeat loop race; the first to
// settle determines the outcome. A losing inner command keeps running
// detached and its record is not updated again. A failed heartbeat fails
// the whole execution even if the command would have succeeded: an
// untrackable execution cannot be reported as trustworthy.
func Track[O any](store Store, opts ...TrackOption) command.Layer[O, O] {
	const name = "Track"

	cfg := trackConfig{heartbeatInterval: DefaultHeartbeatInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(inner command.Command[O]) command.Command[O] {
		return command.Func[O](func(ctx context.Context) (O, error) {
			var zero O

			id, err := command.Value[ExecutionID](ctx)
			if err != nil {
				return zero, contextErr(name, err)
			}
			kind, err := command.Value[CommandKind](ctx)
			if err != nil {
				return zero, contextErr(name, err)
			}

			executionID := uuid.UUID(id)

			if err := store.Register(ctx, executionID, string(kind)); err != nil {
				return zero, datastoreErr(name, err)
			}

			type result struct {
				output O
				err    error
			}

			results := make(chan result, 1)
			go func() {
				out, err := inner.Execute(ctx)
				results <- result{output: out, err: err}
			}()

			// A nil channel never fires, which is exactly the unbounded case.
			var timeout <-chan time.Time
			if cfg.maxExecutionTime > 0 {
				timer := time.NewTimer(cfg.maxExecutionTime)
				defer timer.Stop()
				timeout = timer.C
			}

			heartbeatFailed := make(chan error, 1)
			done := make(chan struct{})
			defer close(done)
			go heartbeat(ctx, store, executionID, cfg.heartbeatInterval, done, heartbeatFailed)

			select {
			case res := <-results:
				return finalize(ctx, store, executionID, res.output, res.err)
			case <-timeout:
				if err := store.Fail(ctx, executionID, timeoutMessage); err != nil {
					return zero, datastoreErr(name, err)
				}
				return zero, fmt.Errorf("%s: %w: %w", name, ErrExtensionFailed, ErrTimeout)
			case err := <-heartbeatFailed:
				return zero, err
			}
		})
	}
}

// heartbeat periodically confirms that the execution is still in progress.
// It stops when done closes or when a store call fails.
func heartbeat(ctx context.Context, store Store, id uuid.UUID, interval time.Duration, done <-chan struct{}, failed chan<- error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := store.Heartbeat(ctx, id); err != nil {
				failed <- datastoreErr("Track", fmt.Errorf("heartbeat failed: %w", err))
				return
			}
		}
	}
}

// finalize persists the terminal state for a completed inner command and
// shapes the caller-visible result.
func finalize[O any](ctx context.Context, store Store, id uuid.UUID, output O, execErr error) (O, error) {
	const name = "Track"

	var zero O

	if execErr != nil {
		if err := store.Fail(ctx, id, execErr.Error()); err != nil {
			return zero, datastoreErr(name, err)
		}
		return zero, commandErr(name, execErr)
	}

	raw, err := json.Marshal(output)
	if err != nil {
		return zero, fmt.Errorf("%s: %w: failed to convert output: %w", name, ErrExtensionFailed, err)
	}

	if err := store.Succeed(ctx, id, raw); err != nil {
		return zero, datastoreErr(name, err)
	}

	return output, nil
}
