package impl

import (
	"context"
	"testing"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	mockRepo "wishlist/internal/mocks/repository"
	mockSvc "wishlist/internal/mocks/service"
	"wishlist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	txRepo    *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(txRepo).Maybe()
	txManager.WithFactory(factory)

	svc := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		txRepo:    txRepo,
		hasher:    hasher,
	}
}

func str(s string) *string {
	return &s
}

func TestUserService_Profile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.userRepo.On("FindByID", ctx, int64(42)).Return(user, nil)

	got, err := fx.service.Profile(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Profile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Profile(ctx, 7)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_UpdateProfile_Email(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fx.txRepo.On("ExistsByEmail", ctx, "new@example.com").Return(false, nil)
	fx.txRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Email: str("new@example.com")})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUserService_UpdateProfile_EmailConflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fx.txRepo.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Email: str("taken@example.com")})
	assert.Equal(t, domainerrors.ErrEmailConflict, err)
}

func TestUserService_UpdateProfile_Username(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fx.txRepo.On("ExistsByUsername", ctx, "alice_2").Return(false, nil)
	fx.txRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Username: str("alice_2")})
	require.NoError(t, err)
	assert.Equal(t, "alice_2", updated.Username)
}

func TestUserService_UpdateProfile_UsernameConflict(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fx.txRepo.On("ExistsByUsername", ctx, "taken").Return(true, nil)

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Username: str("taken")})
	assert.Equal(t, domainerrors.ErrUsernameConflict, err)
}

func TestUserService_UpdateProfile_RejectsBadUsernameCharset(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Username: str("no spaces!")})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
}

func TestUserService_UpdateProfile_RejectsInvalidEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Email: str("not-an-email")})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
}

func TestUserService_UpdateProfile_RejectsWeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Password: str("short")})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
}

func TestUserService_UpdateProfile_Password(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := testUser()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("FindByID", ctx, int64(42)).Return(user, nil)
	fx.hasher.On("Hash", "NewPass1234!").Return("$argon2id$new", nil)
	fx.txRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "$argon2id$new"
	})).Return(nil)

	_, err := fx.service.UpdateProfile(ctx, 42, &usecase.UpdateProfileInput{Password: str("NewPass1234!")})
	require.NoError(t, err)
}

func TestUserService_DeleteAccount_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("Delete", ctx, int64(42)).Return(nil)

	assert.NoError(t, fx.service.DeleteAccount(ctx, 42))
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).Return(nil)
	fx.txRepo.On("Delete", ctx, int64(7)).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, 7)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}
