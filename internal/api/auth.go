package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amanah-dev/masjid-finance/internal/auth"
	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// AuthHandler handles login and token issuance.
type AuthHandler struct {
	store  *store.Store
	tokens *auth.TokenManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(s *store.Store, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{store: s, tokens: tokens}
}

// Login handles POST /auth/login.
// @Summary Login
// @Description Exchange admin credentials for a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
			return
		}
		slog.Error("failed to look up user", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to authenticate")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
		return
	}

	token, err := h.tokens.Issue(user.Username, user.Role)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "username", user.Username)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
