package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for registration, login and profile handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler.
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for opening an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Address  string `json:"address" validate:"omitempty,max=255"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token for the refresh and logout endpoints.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest lists the editable profile fields. Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// RegisterBuyer handles buyer registration.
func (h *AccountHandler) RegisterBuyer(c echo.Context) error {
	return h.register(c, h.accountUC.RegisterBuyer)
}

// RegisterSeller handles seller registration.
func (h *AccountHandler) RegisterSeller(c echo.Context) error {
	return h.register(c, h.accountUC.RegisterSeller)
}

type registerFunc func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)

func (h *AccountHandler) register(c echo.Context, register registerFunc) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output.User)
}

// Login handles the user login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: c.Request().UserAgent(),
		ClientIP:  c.RealIP(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	})
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"access_token": output.AccessToken})
}

// Logout handles the user logout request.
func (h *AccountHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Successfully logged out")
}

// GetProfile returns the caller's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile edits the caller's profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeactivateAccount closes the caller's account.
func (h *AccountHandler) DeactivateAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.accountUC.Deactivate(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Account deactivated")
}

// SessionsResponse lists the caller's signed-in sessions.
type SessionsResponse struct {
	ActiveSessions int               `json:"active_sessions"`
	Sessions       []*entity.Session `json:"sessions"`
}

// ActiveSessions lists the sessions the caller has open.
func (h *AccountHandler) ActiveSessions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessions, err := h.sessionUC.ListSessions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionsResponse{ActiveSessions: len(sessions), Sessions: sessions})
}

// RevokeSession signs out one of the caller's sessions.
func (h *AccountHandler) RevokeSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	sessionID, err := pathUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "Session revoked")
}

// RevokeSessions logs the caller out everywhere.
func (h *AccountHandler) RevokeSessions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return acknowledge(c, "All sessions revoked")
}
