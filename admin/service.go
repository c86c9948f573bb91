package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/indexops/adminkit/core/command"
	"github.com/indexops/adminkit/core/extension"
	"github.com/indexops/adminkit/core/logger"
	"github.com/indexops/adminkit/deployment"
)

var (
	// ErrDeploymentStoreNil is returned when the deployment store is missing.
	ErrDeploymentStoreNil = errors.New("deployment store cannot be nil")

	// ErrExecutionStoreNil is returned when the execution store is missing.
	ErrExecutionStoreNil = errors.New("execution store cannot be nil")
)

// Service executes administrative commands against a data-indexing service.
type Service struct {
	deployments  deployment.Store
	executions   extension.Store
	log          *slog.Logger
	restartDelay time.Duration
	trackOpts    []extension.TrackOption
	brokenOpts   []extension.HandleBrokenOption
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for command execution.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRestartDelay sets the pause-to-resume gap used by Restart.
func WithRestartDelay(delay time.Duration) Option {
	return func(s *Service) {
		if delay > 0 {
			s.restartDelay = delay
		}
	}
}

// WithTrackOptions forwards options to the execution-tracking layer.
func WithTrackOptions(opts ...extension.TrackOption) Option {
	return func(s *Service) {
		s.trackOpts = append(s.trackOpts, opts...)
	}
}

// WithHandleBrokenOptions forwards options to the broken-execution layer.
func WithHandleBrokenOptions(opts ...extension.HandleBrokenOption) Option {
	return func(s *Service) {
		s.brokenOpts = append(s.brokenOpts, opts...)
	}
}

// NewService creates a Service over the given stores.
func NewService(deployments deployment.Store, executions extension.Store, opts ...Option) (*Service, error) {
	if deployments == nil {
		return nil, ErrDeploymentStoreNil
	}
	if executions == nil {
		return nil, ErrExecutionStoreNil
	}

	s := &Service{
		deployments:  deployments,
		executions:   executions,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		restartDelay: deployment.DefaultRestartDelay,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Info returns the deployments matched by the selector and version filter.
func (s *Service) Info(ctx context.Context, sel deployment.Selector, versions deployment.VersionFilter) ([]deployment.Deployment, error) {
	return deployment.Info(s.deployments, sel, versions).Execute(ctx)
}

// Pause synchronously pauses the selected deployment.
func (s *Service) Pause(ctx context.Context, sel deployment.Selector) (bool, error) {
	return deployment.Pause(s.deployments, s.log, sel).Execute(ctx)
}

// Resume synchronously resumes the selected deployment.
func (s *Service) Resume(ctx context.Context, sel deployment.Selector) (bool, error) {
	return deployment.Resume(s.deployments, s.log, sel).Execute(ctx)
}

// Restart pauses the selected deployment and resumes it after the
// configured delay. The work runs detached: the returned execution ID is
// available immediately, and any later outcome is observable only through
// Execution. Before the restart is dispatched, broken executions of the
// same kind are reaped and duplicates are refused.
func (s *Service) Restart(ctx context.Context, sel deployment.Selector) (uuid.UUID, error) {
	cmd := deployment.Restart(s.deployments, s.log, sel, s.restartDelay)

	id, err := command.Stack5(
		cmd,
		extension.Identify[uuid.UUID](deployment.KindRestart),
		extension.HandleBroken[uuid.UUID](s.executions, s.brokenOpts...),
		extension.PreventDuplicates[uuid.UUID](s.executions),
		extension.ExecuteInBackground[bool](),
		extension.Track[bool](s.executions, s.trackOpts...),
	).Execute(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "restart dispatched",
		logger.ExecutionID(id),
		logger.Kind(deployment.KindRestart))

	return id, nil
}

// Execution returns the persisted record of a command execution.
func (s *Service) Execution(ctx context.Context, id uuid.UUID) (extension.Execution, error) {
	return s.executions.Get(ctx, id)
}
