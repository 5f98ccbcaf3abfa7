// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"testing"
	"time"

	"wishlist/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted at cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, encoded string) bool {
	return m.Called(password, encoded).Bool(0)
}

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted at cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(userID int64, username string) (string, int64, error) {
	args := m.Called(userID, username)

	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockTokenService) Validate(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) ResolveSubject(token string) (int64, error) {
	args := m.Called(token)

	return args.Get(0).(int64), args.Error(1)
}

// MockLoginLimiter mocks service.LoginLimiter.
type MockLoginLimiter struct {
	mock.Mock
}

// NewMockLoginLimiter creates a mock whose expectations are asserted at cleanup.
func NewMockLoginLimiter(t *testing.T) *MockLoginLimiter {
	m := &MockLoginLimiter{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLoginLimiter) Allow(key string) (bool, time.Duration, bool) {
	args := m.Called(key)

	return args.Bool(0), args.Get(1).(time.Duration), args.Bool(2)
}

func (m *MockLoginLimiter) RecordFailure(key string) {
	m.Called(key)
}

func (m *MockLoginLimiter) RecordSuccess(key string) {
	m.Called(key)
}

func (m *MockLoginLimiter) Reset() {
	m.Called()
}
