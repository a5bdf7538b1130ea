package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/amanah-dev/masjid-finance/internal/ledger"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// ReportsHandler handles financial report API endpoints.
type ReportsHandler struct {
	ledger *ledger.Service
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(svc *ledger.Service) *ReportsHandler {
	return &ReportsHandler{ledger: svc}
}

// BalanceSheet handles GET /reports/balance-sheet.
// @Summary Balance sheet
// @Description Get the statement of financial position, with current period surplus/deficit closed into equity
// @Tags reports
// @Produce json
// @Success 200 {object} models.BalanceSheet
// @Failure 500 {object} ErrorResponse
// @Router /reports/balance-sheet [get]
func (h *ReportsHandler) BalanceSheet(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledger.BalanceSheet()
	if err != nil {
		slog.Error("failed to generate balance sheet", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to generate balance sheet")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Ledger handles GET /reports/ledger/{account_id}.
// @Summary General ledger
// @Description Get the general ledger of one account with opening balance and running balances
// @Tags reports
// @Produce json
// @Param account_id path int true "Account ID"
// @Param start_date query string false "Period start (YYYY-MM-DD)"
// @Param end_date query string false "Period end (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.Ledger
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/ledger/{account_id} [get]
func (h *ReportsHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "account_id"), 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid account ID")
		return
	}

	startDate, err := parseDateParam(r, "start_date")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := parseDateParam(r, "end_date")
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "end_date must be YYYY-MM-DD")
		return
	}

	report, err := h.ledger.GeneralLedger(accountID, startDate, endDate)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not_found", "Account not found")
			return
		}
		slog.Error("failed to generate ledger", "error", err, "account_id", accountID)
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to generate ledger")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// parseDateParam parses an optional YYYY-MM-DD query parameter.
func parseDateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
