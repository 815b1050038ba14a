// Package handler contains the echo handlers of the JSON API.
package handler

import (
	"log/slog"
	"net/http"

	"lingo/internal/delivery/api/response"
	"lingo/internal/domain/entity"
	"lingo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Cookie    *SessionCookie
	Logger    *slog.Logger
}

// AccountHandler serves registration, login, logout and the profile.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	cookie    *SessionCookie
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		cookie:    params.Cookie,
		logger:    params.Logger,
	}
}

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateRequest is the body of POST /api/users/auth.
type AuthenticateRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PUT /api/users/profile. Empty fields are left unchanged.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password"`
}

// ProfileResponse is the public view of an identity.
type ProfileResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// SessionResponse is returned when a session starts, with the transcript to restore the chat.
type SessionResponse struct {
	ProfileResponse
	ChatHistory []entity.ChatMessage `json:"chatHistory"`
}

func newProfileResponse(identity *entity.Identity) ProfileResponse {
	return ProfileResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
	}
}

func newSessionResponse(identity *entity.Identity) SessionResponse {
	history := identity.ChatHistory
	if history == nil {
		history = []entity.ChatMessage{}
	}

	return SessionResponse{
		ProfileResponse: newProfileResponse(identity),
		ChatHistory:     history,
	}
}

// Register creates an identity and starts its session.
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookie.Set(c, out.Token, out.ExpiresAt)

	return response.Success(c, http.StatusCreated, newSessionResponse(out.Identity))
}

// Authenticate checks credentials and starts a session.
func (h *AccountHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.accountUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.cookie.Set(c, out.Token, out.ExpiresAt)

	return response.Success(c, http.StatusOK, newSessionResponse(out.Identity))
}

// Logout expires the session cookie. Tokens are stateless, so nothing is revoked server side.
func (h *AccountHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)

	return response.Message(c, "Logged out successfully")
}

// GetProfile returns the profile of the session identity.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	identityID, err := sessionIdentity(c, "")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	identity, err := h.accountUC.GetProfile(c.Request().Context(), identityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(identity))
}

// UpdateProfile applies a partial profile update to the session identity.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	identityID, err := sessionIdentity(c, "")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	identity, err := h.accountUC.UpdateProfile(c.Request().Context(), identityID, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProfileResponse(identity))
}
