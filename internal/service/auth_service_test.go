// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"rideflow/internal/auth"
	"rideflow/internal/domain"
	"rideflow/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// authFixture bundles the mocks behind an AuthService under test.
type authFixture struct {
	userRepo     *MockUserRepository
	dbBeginner   *MockDBBeginner
	dbExecutor   *MockDBExecutor
	txController *MockTxController
	tokens       *auth.TokenManager
	service      AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		userRepo:     new(MockUserRepository),
		dbBeginner:   new(MockDBBeginner),
		dbExecutor:   new(MockDBExecutor),
		txController: new(MockTxController),
		tokens:       auth.NewTokenManager("test-secret", time.Hour),
	}
	beginTx, commitTx, rollbackTx := txFuncs(f.txController)
	f.service = NewAuthService(
		f.dbBeginner,
		f.dbExecutor,
		f.userRepo,
		f.tokens,
		beginTx,
		commitTx,
		rollbackTx,
	)
	return f
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("SuccessfulSignUp", func(t *testing.T) {
		f := newAuthFixture()

		f.userRepo.On("GetUserByEmail", ctx, mock.Anything, "rider@example.com").Return(nil, util.ErrNotFound).Once()

		var created *domain.User
		f.userRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				created = args.Get(2).(*domain.User)
			}).Return(nil).Once()
		f.txController.On("Commit").Return(nil).Once()
		f.txController.On("Rollback").Return(nil).Maybe()

		user, token, err := f.service.SignUp(ctx, "Rider", "rider@example.com", "s3cret")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "rider@example.com", user.Email)

		// Password is stored hashed, never verbatim.
		assert.NotEqual(t, "s3cret", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret")))

		// The token carries the new identity.
		claims, err := f.tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.Email)

		mock.AssertExpectationsForObjects(t, f.userRepo, f.txController)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		f := newAuthFixture()
		existing := &domain.User{ID: "u1", Email: "rider@example.com"}

		f.userRepo.On("GetUserByEmail", ctx, mock.Anything, "rider@example.com").Return(existing, nil).Once()
		f.txController.On("Rollback").Return(nil).Once()

		user, token, err := f.service.SignUp(ctx, "Rider", "rider@example.com", "s3cret")

		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
		assert.Nil(t, user)
		assert.Empty(t, token)
		f.userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
		f.txController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, f.userRepo, f.txController)
	})

	t.Run("MissingFields", func(t *testing.T) {
		f := newAuthFixture()

		user, token, err := f.service.SignUp(ctx, "", "rider@example.com", "s3cret")

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, user)
		assert.Empty(t, token)
		f.txController.AssertNotCalled(t, "Rollback")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &domain.User{ID: "u1", Name: "Rider", Email: "rider@example.com", PasswordHash: string(hash)}

	t.Run("SuccessfulLogin", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "rider@example.com").Return(stored, nil).Once()

		user, token, err := f.service.Login(ctx, "rider@example.com", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		claims, err := f.tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)

		mock.AssertExpectationsForObjects(t, f.userRepo)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "rider@example.com").Return(stored, nil).Once()

		user, token, err := f.service.Login(ctx, "rider@example.com", "nope")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.On("GetUserByEmail", ctx, f.dbExecutor, "ghost@example.com").Return(nil, util.ErrNotFound).Once()

		user, token, err := f.service.Login(ctx, "ghost@example.com", "s3cret")

		// Unknown email and wrong password are indistinguishable to the caller.
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})
}
