package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heritage-server/internal/schemas"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) List(ctx context.Context) ([]*schemas.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schemas.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Event), args.Error(1)
}

func (m *MockEventRepository) Create(ctx context.Context, event *schemas.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *schemas.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
