package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJwtManager is a mock of the JWTManager.
// It is used to simulate JWT operations in service tests.
type MockJwtManager struct {
	mock.Mock
}

// GenerateJWT returns a mock JWT string and an optional error, simulating the behavior of JWT generation in tests.
func (m *MockJwtManager) GenerateJWT(accountId uuid.UUID) (string, error) {
	args := m.Called(accountId)
	return args.String(0), args.Error(1)
}

// ValidateJWT returns a mock account id and an optional error, simulating the behavior of JWT validation in tests.
func (m *MockJwtManager) ValidateJWT(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// JWTMiddleware returns the middleware configured in the test.
func (m *MockJwtManager) JWTMiddleware() gin.HandlerFunc {
	args := m.Called()
	return args.Get(0).(gin.HandlerFunc)
}
