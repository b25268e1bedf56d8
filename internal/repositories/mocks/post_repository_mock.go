package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heritage-server/internal/schemas"
)

type MockPostRepository struct {
	mock.Mock
}

func posts(args mock.Arguments) ([]*schemas.Post, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*schemas.Post), args.Error(1)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, contentType string, offset, limit int) ([]*schemas.Post, int, error) {
	args := m.Called(ctx, contentType, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*schemas.Post), args.Int(1), args.Error(2)
}

func (m *MockPostRepository) Featured(ctx context.Context, limit int) ([]*schemas.Post, error) {
	return posts(m.Called(ctx, limit))
}

func (m *MockPostRepository) UpcomingEvents(ctx context.Context, now time.Time, limit int) ([]*schemas.Post, error) {
	return posts(m.Called(ctx, now, limit))
}

func (m *MockPostRepository) Create(ctx context.Context, post *schemas.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *schemas.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, post *schemas.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) ToggleLike(ctx context.Context, id, accountId uuid.UUID) (int, bool, error) {
	args := m.Called(ctx, id, accountId)
	return args.Int(0), args.Bool(1), args.Error(2)
}
