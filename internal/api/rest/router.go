package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/security"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Category    *CategoryHandler
	Tool        *ToolHandler
	Transaction *TransactionHandler
	Dashboard   *DashboardHandler
	Image       *ImageHandler
}

// NewRouter builds the API router. Route protection follows the original
// access rules: everything under /api except login requires a token; user
// management is admin-only; tool and category writes need at least Manager.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	auth := AuthMiddleware(tokens)
	manager := RequireRole(domain.RoleManager)
	admin := RequireRole(domain.RoleAdmin)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth)

	protected.HandleFunc("/auth/me", h.Auth.Me).Methods(http.MethodGet)

	// Users (admin only)
	users := protected.PathPrefix("/users").Subrouter()
	users.Use(admin)
	users.HandleFunc("", h.User.List).Methods(http.MethodGet)
	users.HandleFunc("", h.User.Create).Methods(http.MethodPost)
	users.HandleFunc("/{id:[0-9]+}", h.User.Get).Methods(http.MethodGet)
	users.HandleFunc("/{id:[0-9]+}", h.User.Update).Methods(http.MethodPut)
	users.HandleFunc("/{id:[0-9]+}", h.User.Delete).Methods(http.MethodDelete)

	// Tools
	protected.HandleFunc("/tools", h.Tool.List).Methods(http.MethodGet)
	protected.Handle("/tools", manager(http.HandlerFunc(h.Tool.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/tools/{id:[0-9]+}", h.Tool.Get).Methods(http.MethodGet)
	protected.Handle("/tools/{id:[0-9]+}", manager(http.HandlerFunc(h.Tool.Update))).Methods(http.MethodPut)
	protected.Handle("/tools/{id:[0-9]+}", admin(http.HandlerFunc(h.Tool.Delete))).Methods(http.MethodDelete)
	protected.Handle("/tools/{id:[0-9]+}/image", manager(http.HandlerFunc(h.Image.Upload))).Methods(http.MethodPut)
	protected.HandleFunc("/tools/{id:[0-9]+}/image", h.Image.Download).Methods(http.MethodGet)

	// Categories
	protected.HandleFunc("/categories", h.Category.List).Methods(http.MethodGet)
	protected.Handle("/categories", manager(http.HandlerFunc(h.Category.Create))).Methods(http.MethodPost)
	protected.Handle("/categories/{id:[0-9]+}", admin(http.HandlerFunc(h.Category.Delete))).Methods(http.MethodDelete)

	// Transactions
	protected.HandleFunc("/transactions", h.Transaction.List).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/checkout", h.Transaction.Checkout).Methods(http.MethodPost)
	protected.HandleFunc("/transactions/{id:[0-9]+}/checkin", h.Transaction.Checkin).Methods(http.MethodPut)

	// Dashboard
	protected.HandleFunc("/dashboard/stats", h.Dashboard.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/overdue", h.Dashboard.Overdue).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/recent", h.Dashboard.Recent).Methods(http.MethodGet)

	return r
}
