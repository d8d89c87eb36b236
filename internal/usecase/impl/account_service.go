// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer creates a buyer account.
func (srv *accountService) RegisterBuyer(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleBuyer)
}

// RegisterSeller creates a seller account.
func (srv *accountService) RegisterSeller(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleSeller)
}

func (srv *accountService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	if name == "" {
		return nil, validationError("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationError("email is not a valid address")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("role", role), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		Role:         role,
		Active:       true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing account")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", role), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the user login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	// FindByEmail reads from the primary, so a fresh account can sign in immediately.
	loggedInUser, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, loggedInUser.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !loggedInUser.Active {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("userID", loggedInUser.ID))

		return nil, domainerrors.ErrAccountInactive.WrapMessage("login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.Roles().ToStrings())
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	session := &entity.RefreshToken{
		UserID:     loggedInUser.ID,
		TokenHash:  srv.tokenService.HashToken(refreshTokenString),
		UserAgent:  entity.TruncateUserAgent(input.UserAgent),
		ClientIP:   input.ClientIP,
		ExpiresAt:  now.Add(srv.tokenService.GetRefreshTokenDuration()),
		LastUsedAt: now,
	}
	if err := srv.persistLoginSession(ctx, session); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", loggedInUser.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

func (srv *accountService) persistLoginSession(ctx context.Context, session *entity.RefreshToken) error {
	userID := session.UserID
	if srv.maxActiveSessions <= 0 {
		return storeSession(ctx, srv.refreshTokenRepo, session)
	}

	// With a session limit, count/evict/insert run in one short transaction.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}

		for ; activeSessions >= srv.maxActiveSessions; activeSessions-- {
			if err := refreshRepo.DeleteOldestSessionByUserID(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to evict oldest session")
			}
			srv.log(ctx).Info("Evicted oldest session at session limit", slog.Any("userID", userID), slog.Int("limit", srv.maxActiveSessions))
		}

		return storeSession(ctx, refreshRepo, session)
	}); err != nil {
		return errors.Wrap(err, "failed to execute user login transaction")
	}

	return nil
}

func storeSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, session *entity.RefreshToken) error {
	if err := refreshRepo.CreateRefreshToken(ctx, session); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token using a stored refresh token.
// The refresh token remains unchanged.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		stored, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return translateRepoError(err, "refresh token not found or expired")
		}
		if stored.UserID != claims.UserID {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token subject mismatch")
		}
		if err := repoFactory.RefreshTokenRepo().TouchRefreshToken(ctx, stored.ID, srv.now()); err != nil {
			return translateRepoError(err, "failed to record session use")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}
		if !user.Active {
			return domainerrors.ErrAccountInactive.WrapMessage("account deactivated")
		}

		newAccessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout invalidates the session bound to the given refresh token. Unknown tokens are ignored.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile returns the account of userID.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to get profile")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input to the account.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.Name != nil && trimmedOrEmpty(input.Name) == "" {
		return nil, validationError("name cannot be empty")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		if input.Name != nil {
			user.Name = trimmedOrEmpty(input.Name)
		}
		if input.Phone != nil {
			user.Phone = trimmedOrEmpty(input.Phone)
		}
		if input.Address != nil {
			user.Address = trimmedOrEmpty(input.Address)
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// Deactivate disables the account and revokes every session it holds.
func (srv *accountService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		user.Active = false
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to deactivate user")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to deactivate account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to deactivate account")
	}

	return nil
}
