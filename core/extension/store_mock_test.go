package extension_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/indexops/adminkit/core/command"
	"github.com/indexops/adminkit/core/extension"
)

// MockStore is a testify mock of extension.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Register(ctx context.Context, id uuid.UUID, kind string) error {
	args := m.Called(ctx, id, kind)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id uuid.UUID) (extension.Execution, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(extension.Execution), args.Error(1)
}

func (m *MockStore) AnyInProgress(ctx context.Context, kind string) (bool, error) {
	args := m.Called(ctx, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Heartbeat(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Fail(ctx context.Context, id uuid.UUID, errorMessage string) error {
	args := m.Called(ctx, id, errorMessage)
	return args.Error(0)
}

func (m *MockStore) Succeed(ctx context.Context, id uuid.UUID, output json.RawMessage) error {
	args := m.Called(ctx, id, output)
	return args.Error(0)
}

func (m *MockStore) ReapBroken(ctx context.Context, kind string, maxInactive time.Duration) error {
	args := m.Called(ctx, kind, maxInactive)
	return args.Error(0)
}

// identifiedContext carries the execution identity that the Identify layer
// would normally set, so that inner layers can be tested in isolation.
func identifiedContext(id uuid.UUID, kind string) context.Context {
	ctx := command.Extend(context.Background(), extension.ExecutionID(id))
	return command.Extend(ctx, extension.CommandKind(kind))
}
