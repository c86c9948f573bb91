package admin_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/indexops/adminkit/admin"
	"github.com/indexops/adminkit/core/extension"
	"github.com/indexops/adminkit/deployment"
)

type mockDeploymentStore struct {
	mock.Mock
}

func (m *mockDeploymentStore) Search(ctx context.Context, sel deployment.Selector) ([]deployment.Deployment, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deployment.Deployment), args.Error(1)
}

func (m *mockDeploymentStore) Pause(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDeploymentStore) Resume(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func assignedDeployment(isPaused bool) deployment.Deployment {
	node := "index_node_1"
	return deployment.Deployment{
		ID:            1,
		Hash:          "QmTestHash",
		Namespace:     "sgd1",
		Name:          "test-deployment",
		NodeID:        &node,
		Shard:         "primary",
		Chain:         "mainnet",
		VersionStatus: "current",
		Active:        true,
		Paused:        isPaused,
	}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("requires both stores", func(t *testing.T) {
		t.Parallel()

		_, err := admin.NewService(nil, extension.NewMemoryStore())
		require.ErrorIs(t, err, admin.ErrDeploymentStoreNil)

		_, err = admin.NewService(new(mockDeploymentStore), nil)
		require.ErrorIs(t, err, admin.ErrExecutionStoreNil)
	})

	t.Run("creates a service with defaults", func(t *testing.T) {
		t.Parallel()

		svc, err := admin.NewService(new(mockDeploymentStore), extension.NewMemoryStore())
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}

func TestServiceInfo(t *testing.T) {
	t.Parallel()

	deployments := new(mockDeploymentStore)
	deployments.On("Search", mock.Anything, deployment.Selector{}).
		Return([]deployment.Deployment{assignedDeployment(false)}, nil).Once()

	svc, err := admin.NewService(deployments, extension.NewMemoryStore())
	require.NoError(t, err)

	got, err := svc.Info(context.Background(), deployment.Selector{}, deployment.VersionAll)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "test-deployment", got[0].Name)
}

func TestServicePauseResume(t *testing.T) {
	t.Parallel()

	sel := deployment.ByHash("QmTestHash")

	deployments := new(mockDeploymentStore)
	deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(false)}, nil).Once()
	deployments.On("Pause", mock.Anything, int64(1)).Return(nil).Once()
	deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(true)}, nil).Once()
	deployments.On("Resume", mock.Anything, int64(1)).Return(nil).Once()

	svc, err := admin.NewService(deployments, extension.NewMemoryStore())
	require.NoError(t, err)

	found, err := svc.Pause(context.Background(), sel)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.Resume(context.Background(), sel)
	require.NoError(t, err)
	assert.True(t, found)

	deployments.AssertExpectations(t)
}

func TestServiceRestart(t *testing.T) {
	t.Parallel()

	sel := deployment.ByHash("QmTestHash")

	t.Run("dispatches and records a successful restart", func(t *testing.T) {
		t.Parallel()

		deployments := new(mockDeploymentStore)
		deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(false)}, nil).Once()
		deployments.On("Pause", mock.Anything, int64(1)).Return(nil).Once()
		deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(true)}, nil).Once()
		deployments.On("Resume", mock.Anything, int64(1)).Return(nil).Once()

		executions := extension.NewMemoryStore()
		svc, err := admin.NewService(deployments, executions,
			admin.WithRestartDelay(200*time.Millisecond),
			admin.WithTrackOptions(extension.WithHeartbeatInterval(50*time.Millisecond)),
		)
		require.NoError(t, err)

		start := time.Now()
		id, err := svc.Restart(context.Background(), sel)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Less(t, time.Since(start), 100*time.Millisecond)

		require.Eventually(t, func() bool {
			record, err := svc.Execution(context.Background(), id)
			return err == nil && record.Status == extension.StatusSucceeded
		}, 2*time.Second, 10*time.Millisecond)

		record, err := svc.Execution(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, deployment.KindRestart, record.Kind)
		assert.Equal(t, "true", string(record.CommandOutput))
		deployments.AssertExpectations(t)
	})

	t.Run("records a failed restart", func(t *testing.T) {
		t.Parallel()

		deployments := new(mockDeploymentStore)
		deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{}, nil).Once()

		executions := extension.NewMemoryStore()
		svc, err := admin.NewService(deployments, executions,
			admin.WithRestartDelay(10*time.Millisecond),
		)
		require.NoError(t, err)

		id, err := svc.Restart(context.Background(), sel)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			record, err := svc.Execution(context.Background(), id)
			return err == nil && record.Status == extension.StatusFailed
		}, 2*time.Second, 10*time.Millisecond)

		record, err := svc.Execution(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, record.ErrorMessage)
		assert.Contains(t, *record.ErrorMessage, "not found")
	})

	t.Run("refuses a duplicate restart", func(t *testing.T) {
		t.Parallel()

		executions := extension.NewMemoryStore()
		require.NoError(t, executions.Register(context.Background(), uuid.New(), deployment.KindRestart))

		svc, err := admin.NewService(new(mockDeploymentStore), executions)
		require.NoError(t, err)

		_, err = svc.Restart(context.Background(), sel)
		require.ErrorIs(t, err, extension.ErrDuplicateExecution)
	})

	t.Run("reaps a broken restart before dispatching", func(t *testing.T) {
		t.Parallel()

		executions := extension.NewMemoryStore()
		abandoned := uuid.New()
		require.NoError(t, executions.Register(context.Background(), abandoned, deployment.KindRestart))

		deployments := new(mockDeploymentStore)
		deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(false)}, nil).Once()
		deployments.On("Pause", mock.Anything, int64(1)).Return(nil).Once()
		deployments.On("Search", mock.Anything, sel).Return([]deployment.Deployment{assignedDeployment(true)}, nil).Once()
		deployments.On("Resume", mock.Anything, int64(1)).Return(nil).Once()

		svc, err := admin.NewService(deployments, executions,
			admin.WithRestartDelay(10*time.Millisecond),
			admin.WithHandleBrokenOptions(extension.WithMaxInactiveTime(30*time.Millisecond)),
		)
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		id, err := svc.Restart(context.Background(), sel)
		require.NoError(t, err)

		record, err := svc.Execution(context.Background(), abandoned)
		require.NoError(t, err)
		assert.Equal(t, extension.StatusFailed, record.Status)
		require.NotNil(t, record.ErrorMessage)
		assert.Equal(t, "Timeout", *record.ErrorMessage)

		require.Eventually(t, func() bool {
			rec, err := svc.Execution(context.Background(), id)
			return err == nil && rec.Status == extension.StatusSucceeded
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestServiceExecutionNotFound(t *testing.T) {
	t.Parallel()

	svc, err := admin.NewService(new(mockDeploymentStore), extension.NewMemoryStore())
	require.NoError(t, err)

	_, err = svc.Execution(context.Background(), uuid.New())
	require.ErrorIs(t, err, extension.ErrExecutionNotFound)
}
