package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/amanah-dev/masjid-finance/internal/models"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// TransactionsHandler handles journal API endpoints.
type TransactionsHandler struct {
	store *store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s *store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// Create handles POST /transactions.
// @Summary Create transaction
// @Description Post a balanced double-entry transaction to the journal
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body models.CreateTransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Router /transactions [post]
// @Security BearerAuth
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	var date time.Time
	if req.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "transaction_date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	entries := make([]models.EntryInput, len(req.Entries))
	for i, e := range req.Entries {
		entryType, err := models.ParseEntryType(e.EntryType)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
			return
		}
		entries[i] = models.EntryInput{
			AccountID: e.AccountID,
			EntryType: entryType,
			Amount:    e.Amount,
		}
	}

	input, err := models.NewTransactionInput(req.Description, req.ReferenceNo, date, entries)
	if err != nil {
		// Construction failures are all client-caused; the unbalanced
		// case carries both totals in its message.
		writeJSONError(w, http.StatusBadRequest, "invalid_journal", err.Error())
		return
	}

	created, err := h.store.CreateTransaction(input)
	if err != nil {
		if errors.Is(err, store.ErrUnknownAccount) {
			writeJSONError(w, http.StatusBadRequest, "unknown_account", err.Error())
			return
		}
		slog.Error("failed to create transaction", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to create transaction")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /transactions.
// @Summary List transactions
// @Description Get the most recent transactions, newest first
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum number of transactions (default 100)"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transactions [get]
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit")
			return
		}
		limit = parsed
	}

	txns, err := h.store.ListTransactions(limit)
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, txns)
}
