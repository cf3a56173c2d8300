package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"KisiKart/internal/service"
	"KisiKart/internal/session"
)

// AuthHandler обрабатывает вход и выход. По результату логина выпускает
// соответствующую сессию: административную или owner-сессию карточки.
type AuthHandler struct {
	Auth     *service.AuthService
	Sessions *session.Authority
	Logger   *zap.SugaredLogger
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Authority, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{Auth: auth, Sessions: sessions, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
	ID      string `json:"id,omitempty"`
}

// Login: администратор проверяется первым, затем владелец по номеру телефона.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	role, cardID, err := h.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Logger.Infow("Login: failed", "identifier", req.Username)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Errorw("Login: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	switch role {
	case service.RoleAdmin:
		if err := h.Sessions.IssueAdmin(w); err != nil {
			h.Logger.Errorw("Login: issue admin session", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true, Role: string(service.RoleAdmin)})
	case service.RoleOwner:
		if err := h.Sessions.IssueOwner(w, cardID); err != nil {
			h.Logger.Errorw("Login: issue owner session", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, loginResponse{Success: true, Role: string(service.RoleOwner), ID: cardID})
	}
}

// Logout гасит оба session-кука.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
