package accounts

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"dentman/internal/core/apperror"
	"dentman/internal/core/id"
	"dentman/internal/core/tx"
	"dentman/pkg/logger"
)

const minPasswordLength = 8

// Service provides registration, login and user management.
// Every save path runs the role-consistency validator via User.Validate.
type Service struct {
	repo      Repository
	txManager tx.Manager
	jwt       *JWTService
}

// NewService creates a new accounts service.
func NewService(repo Repository, txManager tx.Manager, jwt *JWTService) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		jwt:       jwt,
	}
}

// Register creates a new patient account.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Email == "" {
		return nil, apperror.NewFieldValidation("email", "email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperror.NewFieldValidation("password",
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if exists, err := s.repo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.NewDuplicate("user", "email", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(req.Email, string(hash))
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber

	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", "user_id", user.ID.String())
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*TokenResult, error) {
	user, err := s.repo.GetByEmail(ctx, creds.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, apperror.NewUnauthorized("invalid email or password")
	}

	if err := user.CanLogin(); err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, apperror.NewUnauthorized("invalid email or password")
	}

	user.RecordSuccessfulLogin()
	if err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, user)
	}); err != nil {
		logger.Warn(ctx, "record login failed", "user_id", user.ID.String(), "error", err)
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &TokenResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		TokenType:   "Bearer",
	}, nil
}

// GetByID retrieves a user.
func (s *Service) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("user", userID.String())
		}
		return nil, err
	}
	return user, nil
}

// Update saves user changes after re-running the validators.
func (s *Service) Update(ctx context.Context, user *User) error {
	if err := user.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, user)
	})
}
