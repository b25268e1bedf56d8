package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"heritage-server/internal/schemas"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) account(args mock.Arguments) (*schemas.Account, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schemas.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*schemas.Account, error) {
	return m.account(m.Called(ctx, email))
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*schemas.Account, error) {
	return m.account(m.Called(ctx, id))
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *schemas.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) ConsumeVerificationToken(ctx context.Context, token string, now time.Time) (*schemas.Account, error) {
	return m.account(m.Called(ctx, token, now))
}

func (m *MockAccountRepository) SetVerificationToken(ctx context.Context, id uuid.UUID, token string, expiry time.Time) error {
	args := m.Called(ctx, id, token, expiry)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email *string, interests []string) (*schemas.Account, error) {
	return m.account(m.Called(ctx, id, username, email, interests))
}

func (m *MockAccountRepository) AddBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error) {
	args := m.Called(ctx, id, itemId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAccountRepository) RemoveBookmark(ctx context.Context, id uuid.UUID, itemId string) ([]string, error) {
	args := m.Called(ctx, id, itemId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
