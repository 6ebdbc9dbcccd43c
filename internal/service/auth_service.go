// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"rideflow/internal/auth"
	"rideflow/internal/domain"
	"rideflow/internal/repository"
	"rideflow/internal/util"
	"rideflow/pkg/db"

	"golang.org/x/crypto/bcrypt"
)

// AuthService defines signup and login business logic.
type AuthService interface {
	// SignUp registers a new user and returns it together with a bearer token.
	SignUp(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a fresh token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// SignUp registers a user with a bcrypt-hashed password. The duplicate-email
// check and the insert run in one transaction.
func (s *authService) SignUp(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, "", fmt.Errorf("sign up: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, "", fmt.Errorf("sign up: transaction controller does not implement DBExecutor")
	}

	_, err = s.userRepo.GetUserByEmail(ctx, txExecutor, email)
	if err == nil {
		return nil, "", util.ErrDuplicateEmail
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, "", fmt.Errorf("sign up: failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("sign up: failed to hash password: %w", err)
	}

	user := domain.NewUser(util.NewID(), name, email, string(hash))
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		return nil, "", fmt.Errorf("sign up: failed to create user: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, "", fmt.Errorf("sign up: failed to commit transaction: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("sign up: failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies the email/password pair. Unknown email and wrong password
// report the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("login: failed to issue token: %w", err)
	}
	return user, token, nil
}
