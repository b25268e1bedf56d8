package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockStorageManager struct {
	mock.Mock
}

func (m *MockStorageManager) Save(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	args := m.Called(ctx, filename, contentType, reader, size)
	return args.String(0), args.Error(1)
}

func (m *MockStorageManager) Remove(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
