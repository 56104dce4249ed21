package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"toolroom-backend/internal/service"
)

// TransactionHandler exposes the checkout/checkin engine over HTTP.
type TransactionHandler struct {
	svc service.TransactionService
}

func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

type checkoutRequest struct {
	ToolID             int64      `json:"tool_id"`
	UserID             int64      `json:"user_id"`
	ExpectedReturnDate *time.Time `json:"expected_return_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// Checkout handles POST /api/transactions/checkout
func (h *TransactionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToolID == 0 || req.UserID == 0 {
		respondError(w, http.StatusBadRequest, "tool_id and user_id are required")
		return
	}

	view, err := h.svc.Checkout(r.Context(), req.ToolID, req.UserID, req.ExpectedReturnDate, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

type checkinRequest struct {
	Notes string `json:"notes,omitempty"`
}

// Checkin handles PUT /api/transactions/{id}/checkin
func (h *TransactionHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	var req checkinRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.svc.Checkin(r.Context(), id, req.Notes)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}
