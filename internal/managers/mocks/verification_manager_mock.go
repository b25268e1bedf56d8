package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockVerificationManager struct {
	mock.Mock
}

func (m *MockVerificationManager) Generate() (string, time.Time, error) {
	args := m.Called()
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockVerificationManager) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
