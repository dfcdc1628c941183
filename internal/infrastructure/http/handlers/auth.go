package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/infrastructure/http/middleware"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// AuthHandlers handles the sign-in gate endpoints
type AuthHandlers struct {
	users  inbound.UserService
	logger *zap.Logger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(users inbound.UserService, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{users: users, logger: logger}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.RegisterCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.users.Register(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.LoginCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.users.Login(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// LoginWithGoogle handles POST /api/v1/auth/google
func (h *AuthHandlers) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDToken string `json:"id_token"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if body.IDToken == "" {
		writeError(w, r, h.logger, errors.NewBadRequestError("id_token is required"))
		return
	}

	result, err := h.users.LoginWithGoogle(r.Context(), body.IDToken)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Logout handles POST /api/v1/auth/logout, revoking the session the
// presented token is bound to
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError("Not authenticated"))
		return
	}

	if err := h.users.Logout(r.Context(), sessionID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if body.RefreshToken == "" {
		writeError(w, r, h.logger, errors.NewBadRequestError("refresh_token is required"))
		return
	}

	result, err := h.users.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// VerifyEmail handles GET /api/v1/auth/verify?token=, the link target
// of the verification mail
func (h *AuthHandlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, r, h.logger, errors.NewBadRequestError("token is required"))
		return
	}

	if err := h.users.VerifyEmail(r.Context(), token); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]bool{"verified": true})
}

// ResendVerification handles POST /api/v1/auth/verify/resend
func (h *AuthHandlers) ResendVerification(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticatedUserID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.users.ResendVerification(r.Context(), userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusAccepted, nil)
}

// GetProfile handles GET /api/v1/auth/profile
func (h *AuthHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticatedUserID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func (h *AuthHandlers) authenticatedUserID(r *http.Request) (uuid.UUID, error) {
	raw, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, errors.NewUnauthorizedError("Not authenticated")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewUnauthorizedError("Not authenticated")
	}
	return userID, nil
}
