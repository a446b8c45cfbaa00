// Package handler exposes the inventory over HTTP. Every list endpoint
// returns a display table; create endpoints accept flat JSON bodies with
// relation mappings expressed as id→quantity maps.
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"minifigdb/internal/domain"
	"minifigdb/internal/schema"
	"minifigdb/internal/service"
	"minifigdb/internal/webtable"
)

// InventoryHandler handles inventory API requests.
type InventoryHandler struct {
	svc *service.InventoryService
}

// NewInventoryHandler creates a handler over the service.
func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Register mounts all inventory routes on the mux.
func (h *InventoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/parts", h.ListParts)
	mux.HandleFunc("POST /api/parts", h.CreatePart)
	mux.HandleFunc("DELETE /api/parts/{id}", h.DeletePart)

	mux.HandleFunc("GET /api/weapons", h.ListWeapons)
	mux.HandleFunc("POST /api/weapons", h.CreateWeapon)

	mux.HandleFunc("GET /api/weapon-slots", h.ListWeaponSlots)
	mux.HandleFunc("POST /api/weapon-slots", h.CreateWeaponSlot)

	mux.HandleFunc("GET /api/templates", h.ListTemplates)
	mux.HandleFunc("POST /api/templates", h.CreateTemplate)

	mux.HandleFunc("GET /api/minifigures", h.ListActuals)
	mux.HandleFunc("POST /api/minifigures", h.CreateActual)
	mux.HandleFunc("DELETE /api/minifigures/{id}", h.DeleteActual)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ListParts returns the parts display table.
func (h *InventoryHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.svc.ListParts(r.Context())
	if err != nil {
		log.Printf("Failed to list parts: %v", err)
		h.writeError(w, "Failed to list parts", err, http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, webtable.ForParts(parts), http.StatusOK)
}

// ListWeapons returns the weapons display table.
func (h *InventoryHandler) ListWeapons(w http.ResponseWriter, r *http.Request) {
	weapons, err := h.svc.ListWeapons(r.Context())
	if err != nil {
		log.Printf("Failed to list weapons: %v", err)
		h.writeError(w, "Failed to list weapons", err, http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, webtable.ForWeapons(weapons), http.StatusOK)
}

// ListWeaponSlots returns the weapon slots display table.
func (h *InventoryHandler) ListWeaponSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListWeaponSlots(r.Context())
	if err != nil {
		log.Printf("Failed to list weapon slots: %v", err)
		h.writeError(w, "Failed to list weapon slots", err, http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, webtable.ForWeaponSlots(slots), http.StatusOK)
}

// ListTemplates returns the templates display table.
func (h *InventoryHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.svc.ListTemplates(r.Context())
	if err != nil {
		log.Printf("Failed to list templates: %v", err)
		h.writeError(w, "Failed to list templates", err, http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, webtable.ForTemplates(templates), http.StatusOK)
}

// ListActuals returns the inventory figures display table.
func (h *InventoryHandler) ListActuals(w http.ResponseWriter, r *http.Request) {
	actuals, err := h.svc.ListActuals(r.Context())
	if err != nil {
		log.Printf("Failed to list minifigures: %v", err)
		h.writeError(w, "Failed to list minifigures", err, http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, webtable.ForActuals(actuals), http.StatusOK)
}

type partRequest struct {
	BricklinkPartID  string `json:"bricklink_part_id"`
	BricklinkColorID string `json:"bricklink_color_id"`
	LegoElementID    string `json:"lego_element_id"`
	LegoDesignID     string `json:"lego_design_id"`
	Description      string `json:"description"`
}

// CreatePart creates a part from its scalar fields.
func (h *InventoryHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req partRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	part, err := domain.NewPart(req.BricklinkPartID, req.BricklinkColorID, req.LegoElementID, req.LegoDesignID, req.Description)
	if err != nil {
		h.writeDomainError(w, "Failed to create part", err)
		return
	}
	if err := h.svc.AddPart(r.Context(), part); err != nil {
		h.writeDomainError(w, "Failed to create part", err)
		return
	}
	h.writeJSON(w, map[string]string{"id": part.ID()}, http.StatusCreated)
}

type weaponRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parts       map[string]int `json:"parts"`
}

// CreateWeapon creates a weapon; parts maps persisted part ids to
// quantities.
func (h *InventoryHandler) CreateWeapon(w http.ResponseWriter, r *http.Request) {
	var req weaponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	weapon, err := h.svc.AddWeapon(r.Context(), req.Name, req.Description, req.Parts)
	if err != nil {
		h.writeDomainError(w, "Failed to create weapon", err)
		return
	}
	h.writeJSON(w, map[string]string{"id": weapon.ID()}, http.StatusCreated)
}

type weaponSlotRequest struct {
	Weapons map[string]int `json:"weapons"`
}

// CreateWeaponSlot creates a weapon slot; an empty weapons map yields the
// canonical empty slot.
func (h *InventoryHandler) CreateWeaponSlot(w http.ResponseWriter, r *http.Request) {
	var req weaponSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	slot, err := h.svc.AddWeaponSlot(r.Context(), req.Weapons)
	if err != nil {
		h.writeDomainError(w, "Failed to create weapon slot", err)
		return
	}
	h.writeJSON(w, map[string]string{"id": slot.ID()}, http.StatusCreated)
}

type templateRequest struct {
	BricklinkFigID  string         `json:"bricklink_fig_id"`
	Name            string         `json:"name"`
	Year            int            `json:"year"`
	Sets            []string       `json:"sets"`
	Parts           map[string]int `json:"parts"`
	PossibleWeapons map[string]int `json:"possible_weapons"`
	Description     string         `json:"description"`
}

// CreateTemplate creates a template; parts and possible_weapons map
// persisted ids to quantities.
func (h *InventoryHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	template, err := h.svc.AddTemplate(r.Context(), req.BricklinkFigID, req.Name, req.Year, req.Sets, req.Parts, req.PossibleWeapons, req.Description)
	if err != nil {
		h.writeDomainError(w, "Failed to create template", err)
		return
	}
	h.writeJSON(w, map[string]string{"id": template.ID()}, http.StatusCreated)
}

type actualRequest struct {
	TemplateID    string `json:"template_id"`
	BoxNumber     int    `json:"box_number"`
	PositionInBox int    `json:"position_in_box"`
	WeaponSlotID  string `json:"weapon_slot_id"`
	Condition     string `json:"condition"`
}

// CreateActual creates a physical inventory figure.
func (h *InventoryHandler) CreateActual(w http.ResponseWriter, r *http.Request) {
	var req actualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err, http.StatusBadRequest)
		return
	}

	actual, err := h.svc.AddActual(r.Context(), req.TemplateID, req.BoxNumber, req.PositionInBox, req.WeaponSlotID, req.Condition)
	if err != nil {
		h.writeDomainError(w, "Failed to create minifigure", err)
		return
	}
	h.writeJSON(w, map[string]string{"id": actual.ID()}, http.StatusCreated)
}

// DeletePart deletes a part by id; fails while still referenced.
func (h *InventoryHandler) DeletePart(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePart(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, "Failed to delete part", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteActual deletes an inventory figure by id.
func (h *InventoryHandler) DeleteActual(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteActual(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, "Failed to delete minifigure", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (h *InventoryHandler) writeError(w http.ResponseWriter, msg string, err error, status int) {
	h.writeJSON(w, ErrorResponse{Error: msg, Details: err.Error()}, status)
}

// writeDomainError maps the error taxonomy onto HTTP statuses: validation
// and consistency failures are the caller's fault, everything else is
// internal.
func (h *InventoryHandler) writeDomainError(w http.ResponseWriter, msg string, err error) {
	var identityErr *domain.IdentityError
	var consistencyErr *domain.ConsistencyError
	var typeErr *schema.TypeError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &identityErr), errors.As(err, &typeErr):
		status = http.StatusBadRequest
	case errors.As(err, &consistencyErr):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", msg, err)
	}
	h.writeError(w, msg, err, status)
}
