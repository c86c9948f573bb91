package extension

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store in memory for tests and local development.
// All operations are safe for concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	executions map[uuid.UUID]*Execution
}

// NewMemoryStore creates an empty in-memory execution store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		executions: make(map[uuid.UUID]*Execution),
	}
}

// Register creates a new in-progress execution record.
func (s *MemoryStore) Register(_ context.Context, id uuid.UUID, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.executions[id]; exists {
		return fmt.Errorf("execution %s already registered", id)
	}

	s.executions[id] = &Execution{
		ID:        id,
		Kind:      kind,
		Status:    StatusInProgress,
		StartedAt: time.Now().UTC(),
	}
	return nil
}

// Get returns a copy of the execution record.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (Execution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	execution, exists := s.executions[id]
	if !exists {
		return Execution{}, fmt.Errorf("%w: %s", ErrExecutionNotFound, id)
	}
	return *execution, nil
}

// AnyInProgress reports whether any execution of the given kind is in progress.
func (s *MemoryStore) AnyInProgress(_ context.Context, kind string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, execution := range s.executions {
		if execution.Kind == kind && execution.Status == StatusInProgress {
			return true, nil
		}
	}
	return false, nil
}

// Heartbeat updates the activity timestamp of a non-completed execution.
// Unknown and completed executions are left untouched, mirroring a
// conditional row update.
func (s *MemoryStore) Heartbeat(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	execution, exists := s.executions[id]
	if !exists || execution.CompletedAt != nil {
		return nil
	}

	now := time.Now().UTC()
	execution.Status = StatusInProgress
	execution.UpdatedAt = &now
	return nil
}

// Fail marks an execution as failed unless it has already completed.
func (s *MemoryStore) Fail(_ context.Context, id uuid.UUID, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.complete(id, StatusFailed, &errorMessage, nil)
	return nil
}

// Succeed marks an execution as succeeded unless it has already completed.
func (s *MemoryStore) Succeed(_ context.Context, id uuid.UUID, output json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.complete(id, StatusSucceeded, nil, output)
	return nil
}

// ReapBroken fails in-progress executions of the given kind that have shown
// no activity within maxInactive.
func (s *MemoryStore) ReapBroken(_ context.Context, kind string, maxInactive time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-maxInactive)

	for id, execution := range s.executions {
		if execution.Kind != kind || execution.Status != StatusInProgress {
			continue
		}

		lastActivity := execution.StartedAt
		if execution.UpdatedAt != nil {
			lastActivity = *execution.UpdatedAt
		}

		if lastActivity.Before(cutoff) {
			message := timeoutMessage
			s.complete(id, StatusFailed, &message, nil)
		}
	}
	return nil
}

// complete finalizes a record exactly once; callers must hold the write lock.
func (s *MemoryStore) complete(id uuid.UUID, status Status, errorMessage *string, output json.RawMessage) {
	execution, exists := s.executions[id]
	if !exists || execution.CompletedAt != nil {
		return
	}

	now := time.Now().UTC()
	execution.Status = status
	execution.ErrorMessage = errorMessage
	execution.CommandOutput = output
	execution.CompletedAt = &now
}
