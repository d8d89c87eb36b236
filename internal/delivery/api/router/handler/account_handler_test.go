package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAccountHandler(t *testing.T) (*AccountHandler, *mockUC.MockAccountUsecase, *mockUC.MockSessionUsecase) {
	accountUC := mockUC.NewMockAccountUsecase(t)
	sessionUC := mockUC.NewMockSessionUsecase(t)

	return NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, SessionUC: sessionUC}), accountUC, sessionUC
}

func TestAccountHandler_RegisterSeller(t *testing.T) {
	h, accountUC, _ := newTestAccountHandler(t)

	accountUC.EXPECT().
		RegisterSeller(mock.Anything, &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "Sup3r$ecret"}).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:           uuid.New(),
			Email:        "ada@example.com",
			PasswordHash: "$2a$10$hash",
			Role:         entity.RoleSeller,
		}}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/auth/register/seller",
		body:   `{"name":"Ada","email":"ada@example.com","password":"Sup3r$ecret"}`,
	})
	require.NoError(t, h.RegisterSeller(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"role":"seller"`)
	assert.NotContains(t, data, "$2a$10$hash")
}

func TestAccountHandler_RegisterBuyer_InvalidEmail(t *testing.T) {
	h, _, _ := newTestAccountHandler(t)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPost,
		target: "/auth/register/buyer",
		body:   `{"name":"Ada","email":"not-an-email","password":"Sup3r$ecret"}`,
	})
	require.NoError(t, h.RegisterBuyer(c))

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "email")
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		h, accountUC, _ := newTestAccountHandler(t)

		accountUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "pw", ClientIP: "192.0.2.1"}).
			Return(&usecase.LoginOutput{AccessToken: "access", RefreshToken: "refresh", User: &entity.User{ID: uuid.New()}}, nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/auth/login",
			body:   `{"email":"ada@example.com","password":"pw"}`,
		})
		require.NoError(t, h.Login(c))

		require.Equal(t, http.StatusOK, rec.Code)
		data := string(decodeEnvelope(t, rec).Data)
		assert.Contains(t, data, `"access_token":"access"`)
		assert.Contains(t, data, `"refresh_token":"refresh"`)
	})

	t.Run("wrong password hides details", func(t *testing.T) {
		h, accountUC, _ := newTestAccountHandler(t)

		accountUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodPost,
			target: "/auth/login",
			body:   `{"email":"ada@example.com","password":"nope"}`,
		})
		require.NoError(t, h.Login(c))

		env := requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrInvalidCredentials.ErrorCode())
		assert.Nil(t, env.Error.Details)
	})
}

func TestAccountHandler_UpdateProfile_PartialFields(t *testing.T) {
	h, accountUC, _ := newTestAccountHandler(t)
	userID := uuid.New()

	accountUC.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name == nil && in.Phone != nil && *in.Phone == "555-0100" && in.Address == nil
		})).
		Return(&entity.User{ID: userID, Phone: "555-0100"}, nil)

	c, rec := newTestContext(t, testRequest{
		method: http.MethodPatch,
		target: "/api/v1/me",
		body:   `{"phone":"555-0100"}`,
		userID: userID,
	})
	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_ActiveSessions(t *testing.T) {
	h, _, sessionUC := newTestAccountHandler(t)
	userID := uuid.New()
	sessions := []*entity.Session{
		{ID: uuid.New(), UserAgent: "MarketApp/2.4 (iOS 18)"},
		{ID: uuid.New(), UserAgent: "Mozilla/5.0"},
	}

	sessionUC.EXPECT().ListSessions(mock.Anything, userID).Return(sessions, nil)

	c, rec := newTestContext(t, testRequest{method: http.MethodGet, target: "/api/v1/me/sessions", userID: userID})
	require.NoError(t, h.ActiveSessions(c))

	require.Equal(t, http.StatusOK, rec.Code)
	data := string(decodeEnvelope(t, rec).Data)
	assert.Contains(t, data, `"active_sessions":2`)
	assert.Contains(t, data, "MarketApp/2.4")
	assert.NotContains(t, data, "token")
}

func TestAccountHandler_RevokeSession(t *testing.T) {
	userID := uuid.New()
	sessionID := uuid.New()

	t.Run("revoked", func(t *testing.T) {
		h, _, sessionUC := newTestAccountHandler(t)

		sessionUC.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(nil)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/me/sessions/" + sessionID.String(),
			userID: userID,
			params: map[string]string{"id": sessionID.String()},
		})
		require.NoError(t, h.RevokeSession(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		h, _, sessionUC := newTestAccountHandler(t)

		sessionUC.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(domainerrors.ErrSessionNotFound)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/me/sessions/" + sessionID.String(),
			userID: userID,
			params: map[string]string{"id": sessionID.String()},
		})
		require.NoError(t, h.RevokeSession(c))
		requireErrorCode(t, rec, http.StatusNotFound, "SESSION_NOT_FOUND")
	})

	t.Run("bad id", func(t *testing.T) {
		h, _, _ := newTestAccountHandler(t)

		c, rec := newTestContext(t, testRequest{
			method: http.MethodDelete,
			target: "/api/v1/me/sessions/abc",
			userID: userID,
			params: map[string]string{"id": "abc"},
		})
		require.NoError(t, h.RevokeSession(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
