package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"toolroom-backend/internal/domain"
	"toolroom-backend/internal/service"
)

type ToolHandler struct {
	svc service.ToolService
}

func NewToolHandler(svc service.ToolService) *ToolHandler {
	return &ToolHandler{svc: svc}
}

type toolRequest struct {
	Name         string     `json:"name"`
	AssetTag     string     `json:"asset_tag"`
	CategoryID   int64      `json:"category_id"`
	Status       string     `json:"status,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Location     string     `json:"location,omitempty"`
}

// List handles GET /api/tools?search=
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.ListTools(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tools)
}

// Create handles POST /api/tools
func (h *ToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req toolRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool := &domain.Tool{
		Name:         req.Name,
		AssetTag:     req.AssetTag,
		CategoryID:   req.CategoryID,
		Status:       domain.ToolStatus(req.Status),
		PurchaseDate: req.PurchaseDate,
		Location:     req.Location,
	}
	created, err := h.svc.CreateTool(r.Context(), tool)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Get handles GET /api/tools/{id}
func (h *ToolHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	tool, err := h.svc.GetTool(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tool)
}

// Update handles PUT /api/tools/{id}
func (h *ToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	var req toolRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool := &domain.Tool{
		ID:           id,
		Name:         req.Name,
		AssetTag:     req.AssetTag,
		CategoryID:   req.CategoryID,
		Status:       domain.ToolStatus(req.Status),
		PurchaseDate: req.PurchaseDate,
		Location:     req.Location,
	}
	updated, err := h.svc.UpdateTool(r.Context(), tool)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/tools/{id}
func (h *ToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	if err := h.svc.DeleteTool(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Tool removed"})
}
