package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMailManager struct {
	mock.Mock
}

func (m *MockMailManager) SendVerificationMail(ctx context.Context, email, username, token string) error {
	args := m.Called(ctx, email, username, token)
	return args.Error(0)
}

func (m *MockMailManager) SendConfirmationMail(ctx context.Context, email, username string) error {
	args := m.Called(ctx, email, username)
	return args.Error(0)
}
