package impl

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service          usecase.AccountUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T, maxActiveSessions int) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().RefreshTokenRepo().Return(refreshTokenRepo).Maybe()

	svc := NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:          svc,
		txManager:        txManager,
		factory:          factory,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestAccountService_RegisterBuyer_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test Buyer",
		Email:    "  Buyer@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "buyer@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.RegisterBuyer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "buyer@example.com", output.User.Email)
	assert.Equal(t, entity.RoleBuyer, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.True(t, output.User.Active)
}

func TestAccountService_RegisterSeller_AssignsSellerRole(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Shop", Email: "shop@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.RegisterSeller(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.User.IsSeller())
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Dup", Email: "dup@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	output, err := fx.service.RegisterBuyer(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t, 0)

	input := &usecase.RegisterInput{Name: "Weak", Email: "weak@example.com", Password: "123"}
	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WithDetails("password too short"))

	output, err := fx.service.RegisterBuyer(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAccountService_Register_InvalidEmail(t *testing.T) {
	fx := createTestAccountService(t, 0)

	output, err := fx.service.RegisterBuyer(context.Background(), &usecase.RegisterInput{
		Name:     "Bad",
		Email:    "not-an-email",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", PasswordHash: "hashed", Role: entity.RoleBuyer, Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"buyer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID &&
				token.TokenHash == "refresh-hash" &&
				token.UserAgent == "MarketApp/2.4 (iOS 18)" &&
				token.ClientIP == "203.0.113.7" &&
				token.ExpiresAt.Sub(token.LastUsedAt) == time.Hour
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:     "buyer@example.com",
		Password:  "Password123!",
		UserAgent: "MarketApp/2.4 (iOS 18)",
		ClientIP:  "203.0.113.7",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Role: entity.RoleBuyer, Active: true}
	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Role: entity.RoleBuyer, Active: false}
	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "Password123!"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAccountService_Login_EvictsOldestSessionAtLimit(t *testing.T) {
	fx := createTestAccountService(t, 2)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Role: entity.RoleSeller, Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "seller@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"seller"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	expectTx(fx.txManager, fx.factory)
	fx.refreshTokenRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil)
	fx.refreshTokenRepo.EXPECT().DeleteOldestSessionByUserID(ctx, user.ID).Return(nil).Once()
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "seller@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestAccountService_Login_BelowLimitKeepsSessions(t *testing.T) {
	fx := createTestAccountService(t, 3)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", Role: entity.RoleBuyer, Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"buyer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	expectTx(fx.txManager, fx.factory)
	fx.refreshTokenRepo.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(1, nil)
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "Password123!"})

	require.NoError(t, err)
	fx.refreshTokenRepo.AssertNotCalled(t, "DeleteOldestSessionByUserID", mock.Anything, mock.Anything)
}

func TestAccountService_RefreshToken_Success(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleBuyer, Active: true}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	expectTx(fx.txManager, fx.factory)
	sessionID := uuid.New()
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
	fx.refreshTokenRepo.EXPECT().TouchRefreshToken(ctx, sessionID, mock.AnythingOfType("time.Time")).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"buyer"}).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAccountService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	expectTx(fx.txManager, fx.factory)
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_RefreshToken_InvalidSignature(t *testing.T) {
	fx := createTestAccountService(t, 0)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAccountService_Logout_UnknownTokenIsIgnored(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"})

	require.NoError(t, err)
}

func TestAccountService_UpdateProfile_AppliesProvidedFields(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Old", Phone: "111", Address: "Somewhere"}
	newPhone := " 222 "

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Phone: &newPhone})

	require.NoError(t, err)
	assert.Equal(t, "Old", updated.Name)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, "Somewhere", updated.Address)
}

func TestAccountService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestAccountService(t, 0)

	blank := "  "
	updated, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Name: &blank})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Deactivate_RevokesSessions(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Active: true}

	expectTx(fx.txManager, fx.factory)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return !u.Active })).
		Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

	err := fx.service.Deactivate(ctx, userID)

	require.NoError(t, err)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
