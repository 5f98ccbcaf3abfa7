// Package usecase provides hand-written testify mocks for the usecase
// interfaces consumed by the delivery layer.
package usecase

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	"wishlist/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase mocks usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock whose expectations are asserted at cleanup.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.TokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, token string) (*usecase.TokenOutput, error) {
	args := m.Called(ctx, token)
	if output, ok := args.Get(0).(*usecase.TokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock whose expectations are asserted at cleanup.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) Profile(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) DeleteAccount(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

// MockWishUsecase mocks usecase.WishUsecase.
type MockWishUsecase struct {
	mock.Mock
}

// NewMockWishUsecase creates a mock whose expectations are asserted at cleanup.
func NewMockWishUsecase(t *testing.T) *MockWishUsecase {
	m := &MockWishUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishUsecase) CreateWish(ctx context.Context, userID int64, input *usecase.CreateWishInput) (*entity.Wish, error) {
	args := m.Called(ctx, userID, input)
	if wish, ok := args.Get(0).(*entity.Wish); ok {
		return wish, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishUsecase) GetWish(ctx context.Context, userID, wishID int64) (*entity.Wish, error) {
	args := m.Called(ctx, userID, wishID)
	if wish, ok := args.Get(0).(*entity.Wish); ok {
		return wish, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishUsecase) ListWishes(ctx context.Context, userID int64, input *usecase.ListWishesInput) (*usecase.WishPage, error) {
	args := m.Called(ctx, userID, input)
	if page, ok := args.Get(0).(*usecase.WishPage); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishUsecase) UpdateWish(ctx context.Context, userID, wishID int64, input *usecase.UpdateWishInput) (*entity.Wish, error) {
	args := m.Called(ctx, userID, wishID, input)
	if wish, ok := args.Get(0).(*entity.Wish); ok {
		return wish, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockWishUsecase) DeleteWish(ctx context.Context, userID, wishID int64) error {
	return m.Called(ctx, userID, wishID).Error(0)
}
