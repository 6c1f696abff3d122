// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"brandsafe/internal/domain/entity"
	domainerrors "brandsafe/internal/domain/errors"
	"brandsafe/internal/domain/repository"
	"brandsafe/internal/domain/service"
	"brandsafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup orchestrates the complete registration process.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Info("Starting signup", slog.String("email", email))

	role := entity.RoleCreator
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of: creator, admin").
				WrapMessage("signup failed")
		}
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.logger.Warn("Password validation failed during signup", slog.String("email", email))

		return nil, errors.Wrap(err, "signup failed")
	}

	// Hash outside the transaction: bcrypt is CPU-bound and deliberately
	// slow, so it must not hold a database connection.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "signup failed")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// The existence check gives a clean conflict for the common case;
		// the unique constraint on email closes the check-then-act race.
		_, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("signup failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.tokenService.Issue(registeredUser.ID, registeredUser.Email, registeredUser.Role)
	if err != nil {
		srv.logger.Error("Failed to issue token after signup", slog.Any("userID", registeredUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("Signup completed", slog.Any("userID", registeredUser.ID))

	return &usecase.AuthOutput{
		User:  entity.ToSafeUser(registeredUser),
		Token: token,
	}, nil
}

// Login orchestrates the login process. Unknown email and wrong password
// both produce ErrInvalidCredentials; callers cannot distinguish them.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.logger.Debug("Starting login", slog.String("email", email))

	user, err := srv.loadUserByEmail(ctx, email)
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		srv.logger.Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		User:  entity.ToSafeUser(user),
		Token: token,
	}, nil
}

// CurrentUser resolves a token subject to its safe projection.
func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.SafeUser, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return entity.ToSafeUser(user), nil
}

func (srv *authService) loadUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user *entity.User

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		foundUser, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = foundUser

		return nil
	}); err != nil {
		return nil, err
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
