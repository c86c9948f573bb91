package deployment_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/indexops/adminkit/deployment"
)

// MockStore is a testify mock of deployment.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Search(ctx context.Context, sel deployment.Selector) ([]deployment.Deployment, error) {
	args := m.Called(ctx, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deployment.Deployment), args.Error(1)
}

func (m *MockStore) Pause(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Resume(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptr(s string) *string { return &s }

func testDeployment(id int64, opts ...func(*deployment.Deployment)) deployment.Deployment {
	d := deployment.Deployment{
		ID:            id,
		Hash:          "QmTestHash",
		Namespace:     "sgd1",
		Name:          "test-deployment",
		NodeID:        ptr("index_node_1"),
		Shard:         "primary",
		Chain:         "mainnet",
		VersionStatus: "current",
		Active:        true,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func paused(d *deployment.Deployment)     { d.Paused = true }
func unassigned(d *deployment.Deployment) { d.NodeID = nil }
