package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"minifigdb/internal/repository"
	"minifigdb/internal/service"
	"minifigdb/internal/store"
	"minifigdb/internal/webtable"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	inv := repository.NewInventory(st)
	if err := inv.CreateSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	mux := http.NewServeMux()
	NewInventoryHandler(service.NewInventoryService(inv)).Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["id"] == "" {
		t.Fatalf("expected an id in %s", rec.Body.String())
	}
	return resp["id"]
}

func TestCreateAndListParts(t *testing.T) {
	mux := newTestMux(t)

	id := createdID(t, doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id":  "3001",
		"bricklink_color_id": "5",
		"description":        "brick 2x4",
	}))

	rec := doJSON(t, mux, http.MethodGet, "/api/parts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var table webtable.Table
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("failed to decode table: %v", err)
	}
	if table.Entity != "part" || len(table.Rows) != 1 {
		t.Fatalf("unexpected table: %+v", table)
	}
	if table.Rows[0]["id"] != id {
		t.Fatalf("expected row id %s, got %s", id, table.Rows[0]["id"])
	}
}

func TestCreatePartValidationFails(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id": "3001",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	if resp.Error == "" || resp.Details == "" {
		t.Fatalf("expected populated error body, got %+v", resp)
	}
}

func TestCreateWeaponUnknownPartConflicts(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/weapons", map[string]any{
		"name":  "Sword",
		"parts": map[string]int{"nope": 1},
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestFullGraphOverHTTP(t *testing.T) {
	mux := newTestMux(t)

	partID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id":  "blade",
		"bricklink_color_id": "1",
	}))
	bodyID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id":  "973",
		"bricklink_color_id": "5",
	}))

	weaponID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/weapons", map[string]any{
		"name":  "Sword",
		"parts": map[string]int{partID: 1},
	}))
	slotID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/weapon-slots", map[string]any{
		"weapons": map[string]int{weaponID: 1},
	}))
	templateID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/templates", map[string]any{
		"bricklink_fig_id": "cas123",
		"name":             "Red Knight",
		"year":             2020,
		"sets":             []string{"6080"},
		"parts":            map[string]int{bodyID: 1},
		"possible_weapons": map[string]int{slotID: 1},
	}))
	figureID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/minifigures", map[string]any{
		"template_id":     templateID,
		"box_number":      1,
		"position_in_box": 1,
		"weapon_slot_id":  slotID,
		"condition":       "new",
	}))

	rec := doJSON(t, mux, http.MethodGet, "/api/minifigures", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var table webtable.Table
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("failed to decode table: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0]["id"] != figureID {
		t.Fatalf("unexpected table: %+v", table)
	}
	if table.Rows[0]["weapon_slot_id"] != slotID {
		t.Fatalf("expected slot %s, got %s", slotID, table.Rows[0]["weapon_slot_id"])
	}

	// A slot the template does not declare is rejected.
	rec = doJSON(t, mux, http.MethodPost, "/api/weapon-slots", map[string]any{
		"weapons": map[string]int{weaponID: 3},
	})
	otherSlot := createdID(t, rec)
	rec = doJSON(t, mux, http.MethodPost, "/api/minifigures", map[string]any{
		"template_id":     templateID,
		"box_number":      1,
		"position_in_box": 2,
		"weapon_slot_id":  otherSlot,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeletePart(t *testing.T) {
	mux := newTestMux(t)

	id := createdID(t, doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id":  "3001",
		"bricklink_color_id": "5",
	}))

	rec := doJSON(t, mux, http.MethodDelete, "/api/parts/"+id, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	// Deleting again conflicts: the id no longer names a part.
	rec = doJSON(t, mux, http.MethodDelete, "/api/parts/"+id, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteMinifigure(t *testing.T) {
	mux := newTestMux(t)

	bodyID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/parts", map[string]string{
		"bricklink_part_id":  "973",
		"bricklink_color_id": "5",
	}))
	templateID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/templates", map[string]any{
		"bricklink_fig_id": "cas124",
		"name":             "Guard",
		"year":             2019,
		"parts":            map[string]int{bodyID: 1},
	}))
	figureID := createdID(t, doJSON(t, mux, http.MethodPost, "/api/minifigures", map[string]any{
		"template_id":     templateID,
		"box_number":      2,
		"position_in_box": 1,
	}))

	rec := doJSON(t, mux, http.MethodDelete, "/api/minifigures/"+figureID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/minifigures", nil)
	var table webtable.Table
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("failed to decode table: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected empty table, got %+v", table.Rows)
	}
}
