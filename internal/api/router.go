package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amanah-dev/masjid-finance/internal/auth"
	"github.com/amanah-dev/masjid-finance/internal/ledger"
	"github.com/amanah-dev/masjid-finance/internal/store"
)

// NewRouter builds the HTTP router. Read endpoints are public; write
// endpoints require a bearer token.
func NewRouter(st *store.Store, tokens *auth.TokenManager) chi.Router {
	ledgerSvc := ledger.NewService(st)

	authHandler := NewAuthHandler(st, tokens)
	accountsHandler := NewAccountsHandler(st)
	transactionsHandler := NewTransactionsHandler(st)
	reportsHandler := NewReportsHandler(ledgerSvc)

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Authentication endpoint.
	r.Post("/auth/login", authHandler.Login)

	// Chart of accounts.
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountsHandler.List)
		r.With(RequireAuth(tokens)).Post("/", accountsHandler.Create)
	})

	// Journal.
	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", transactionsHandler.List)
		r.With(RequireAuth(tokens)).Post("/", transactionsHandler.Create)
	})

	// Reports.
	r.Route("/reports", func(r chi.Router) {
		r.Get("/balance-sheet", reportsHandler.BalanceSheet)
		r.Get("/ledger/{account_id}", reportsHandler.Ledger)
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
