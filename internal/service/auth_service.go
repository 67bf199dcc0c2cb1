package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/task-tracker-api/internal/domain"
	"github.com/phrazzld/task-tracker-api/internal/service/auth"
	"github.com/phrazzld/task-tracker-api/internal/store"
)

// dummySalt is hashed against when a username is unknown, so lookups for
// missing and existing users cost the same.
const dummySalt = "dGltaW5nLWVxdWFsaXplcg"

// SignInResult is the outcome of a successful sign-in.
type SignInResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AuthService provides account registration, credential checks and
// token-based authentication.
type AuthService interface {
	// SignUp registers a new account. Returns store.ErrUsernameExists when the name is taken.
	SignUp(ctx context.Context, username, password string) (*domain.User, error)

	// ValidateCredentials returns the username and true when password matches.
	// An unknown user is a non-match, not an error.
	ValidateCredentials(ctx context.Context, username, password string) (string, bool, error)

	// SignIn validates credentials and issues an access token.
	// Returns ErrInvalidCredentials on any mismatch.
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)

	// Authenticate resolves a token to the user it names, looked up fresh.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// DeleteAccount removes the user and their tasks. Outstanding tokens stop validating.
	DeleteAccount(ctx context.Context, user *domain.User) error
}

type authServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.CredentialHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.CredentialHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) (AuthService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if jwtService == nil {
		return nil, domain.NewValidationError("jwtService", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &authServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_service")),
	}, nil
}

// SignUp implements AuthService.SignUp
func (s *authServiceImpl) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		s.logger.Error("failed to generate salt", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signup", "failed to generate salt", err)
	}
	hash, err := s.hasher.Hash(password, salt)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signup", "failed to hash password", err)
	}

	user, err := domain.NewUser(username, hash, salt)
	if err != nil {
		return nil, toValidationError("username", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to create user with existing username",
				slog.String("username", username))
			return nil, err
		}
		s.logger.Error("failed to save user", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signup", "failed to save user", err)
	}

	s.logger.Info("user created", slog.Int64("user_id", user.ID))
	return user, nil
}

// ValidateCredentials implements AuthService.ValidateCredentials
func (s *authServiceImpl) ValidateCredentials(
	ctx context.Context,
	username, password string,
) (string, bool, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to look up user", slog.String("error", err.Error()))
			return "", false, NewServiceError("auth", "validate", "failed to look up user", err)
		}
		if _, hashErr := s.hasher.Hash(password, dummySalt); hashErr != nil {
			return "", false, NewServiceError("auth", "validate", "failed to hash password", hashErr)
		}
		return "", false, nil
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password, user.Salt)
	if err != nil {
		s.logger.Error("failed to compare password", slog.String("error", err.Error()))
		return "", false, NewServiceError("auth", "validate", "failed to compare password", err)
	}
	if !ok {
		return "", false, nil
	}
	return user.Username, true, nil
}

// SignIn implements AuthService.SignIn
func (s *authServiceImpl) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	name, ok, err := s.ValidateCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("sign-in rejected")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(ctx, name)
	if err != nil {
		s.logger.Error("failed to issue token", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "signin", "failed to issue token", err)
	}
	return &SignInResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Authenticate implements AuthService.Authenticate
func (s *authServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.jwtService.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("token subject no longer exists", slog.String("token_id", claims.ID))
			return nil, auth.ErrInvalidToken
		}
		s.logger.Error("failed to look up token subject", slog.String("error", err.Error()))
		return nil, NewServiceError("auth", "authenticate", "failed to look up user", err)
	}
	return user, nil
}

// DeleteAccount implements AuthService.DeleteAccount
func (s *authServiceImpl) DeleteAccount(ctx context.Context, user *domain.User) error {
	if user == nil {
		return ErrMissingOwner
	}
	if err := s.userStore.Delete(ctx, user.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return auth.ErrInvalidToken
		}
		return NewServiceError("auth", "delete account", fmt.Sprintf("failed to delete user %d", user.ID), err)
	}
	s.logger.Info("user deleted", slog.Int64("user_id", user.ID))
	return nil
}
