package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// AccountsHandler handles chart-of-accounts API endpoints.
type AccountsHandler struct {
	store *store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s *store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// List handles GET /accounts.
// @Summary List accounts
// @Description Get the chart of accounts ordered by code
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account
// @Failure 500 {object} ErrorResponse
// @Router /accounts [get]
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		slog.Error("failed to list accounts", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list accounts")
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

// Create handles POST /accounts.
// @Summary Create account
// @Description Register a new account in the chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param body body models.CreateAccountRequest true "Account"
// @Success 201 {object} models.Account
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /accounts [post]
// @Security BearerAuth
func (h *AccountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	if req.Code == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing code")
		return
	}
	if req.Name == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing name")
		return
	}

	accountType, err := models.ParseAccountType(req.AccountType)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	account, err := h.store.CreateAccount(models.Account{
		Code:        req.Code,
		Name:        req.Name,
		AccountType: accountType,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCode) {
			writeJSONError(w, http.StatusConflict, "duplicate_code", err.Error())
			return
		}
		slog.Error("failed to create account", "error", err, "code", req.Code)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, account)
}
