// Package repository provides hand-written testify mocks for the
// persistence interfaces.
package repository

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	"wishlist/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock whose expectations are asserted at cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	args := m.Called(ctx, identifier)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockWishRepository mocks repository.WishRepository.
type MockWishRepository struct {
	mock.Mock
}

// NewMockWishRepository creates a mock whose expectations are asserted at cleanup.
func NewMockWishRepository(t *testing.T) *MockWishRepository {
	m := &MockWishRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishRepository) Create(ctx context.Context, wish *entity.Wish) error {
	return m.Called(ctx, wish).Error(0)
}

func (m *MockWishRepository) FindByUserAndID(ctx context.Context, userID, wishID int64) (*entity.Wish, error) {
	args := m.Called(ctx, userID, wishID)
	if wish, ok := args.Get(0).(*entity.Wish); ok {
		return wish, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishRepository) ListByUser(ctx context.Context, userID int64, skip, limit int) ([]*entity.Wish, error) {
	args := m.Called(ctx, userID, skip, limit)
	if wishes, ok := args.Get(0).([]*entity.Wish); ok {
		return wishes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishRepository) SearchByTitle(ctx context.Context, userID int64, term string, skip, limit int) ([]*entity.Wish, int64, error) {
	args := m.Called(ctx, userID, term, skip, limit)
	if wishes, ok := args.Get(0).([]*entity.Wish); ok {
		return wishes, args.Get(1).(int64), args.Error(2)
	}

	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockWishRepository) Update(ctx context.Context, wish *entity.Wish) error {
	return m.Called(ctx, wish).Error(0)
}

func (m *MockWishRepository) DeleteByUserAndID(ctx context.Context, userID, wishID int64) error {
	return m.Called(ctx, userID, wishID).Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted at cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) WishRepo() repository.WishRepository {
	return m.Called().Get(0).(repository.WishRepository)
}

// MockTransactionManager mocks repository.TransactionManager. Execute runs
// the callback against the factory configured with WithFactory, mirroring a
// committed transaction.
type MockTransactionManager struct {
	mock.Mock

	factory repository.RepositoryFactory
}

// NewMockTransactionManager creates a mock whose expectations are asserted at cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// WithFactory sets the factory handed to Execute callbacks.
func (m *MockTransactionManager) WithFactory(factory repository.RepositoryFactory) *MockTransactionManager {
	m.factory = factory

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if m.factory != nil {
		if err := fn(m.factory); err != nil {
			return err
		}
	}

	return args.Error(0)
}
