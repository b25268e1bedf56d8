package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"heritage-server/internal/interfaces"
)

type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) GetPool() interfaces.PgxPoolIface {
	args := m.Called()
	return args.Get(0).(interfaces.PgxPoolIface)
}

func (m *MockDatabaseManager) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
