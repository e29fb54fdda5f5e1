package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	"github.com/motohub/moto-catalog/internal/store"
)

func addToCompare(r http.Handler, sessionID, motorcycleID string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/compare", sessionID, handler.CompareAddRequest{MotorcycleID: motorcycleID})
}

func TestAddToCompareHandler(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)

	w := addToCompare(r, sid, "ducati-panigale-v4")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.CompareResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Items) != 1 || !resp.CanAddMore {
		t.Errorf("unexpected compare state %+v", resp)
	}
}

func TestAddToCompareHandler_Duplicate(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)
	addToCompare(r, sid, "ducati-panigale-v4")

	w := addToCompare(r, sid, "ducati-panigale-v4")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	var resp handler.CompareAddResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Added || resp.Reason != "already in compare" {
		t.Errorf("unexpected result %+v", resp)
	}
}

func TestAddToCompareHandler_Full(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)
	for _, id := range []string{"ducati-panigale-v4", "bmw-s1000rr", "kawasaki-ninja-zx10r"} {
		if w := addToCompare(r, sid, id); w.Code != http.StatusCreated {
			t.Fatalf("expected %q to be accepted, got %d", id, w.Code)
		}
	}

	w := addToCompare(r, sid, "yamaha-mt09")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict on the fourth add, got %d", w.Code)
	}

	var resp handler.CompareAddResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Reason != "compare limit reached" {
		t.Errorf("expected the limit reason, got %q", resp.Reason)
	}

	// The rejected add left the set unchanged.
	get := doJSON(r, http.MethodGet, "/compare", sid, nil)
	var state handler.CompareResponse
	json.NewDecoder(get.Body).Decode(&state)
	if len(state.Items) != store.MaxCompareItems {
		t.Errorf("expected %d items, got %d", store.MaxCompareItems, len(state.Items))
	}
	if state.Items[0].ID != "ducati-panigale-v4" {
		t.Errorf("expected add order to hold, got %q first", state.Items[0].ID)
	}
}

func TestAddToCompareHandler_UnknownMotorcycle(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)

	w := addToCompare(r, sid, "no-such-bike")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestRemoveFromCompareHandler_MakesRoom(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)
	for _, id := range []string{"ducati-panigale-v4", "bmw-s1000rr", "kawasaki-ninja-zx10r"} {
		addToCompare(r, sid, id)
	}

	w := doJSON(r, http.MethodDelete, "/compare/bmw-s1000rr", sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	if got := addToCompare(r, sid, "yamaha-mt09"); got.Code != http.StatusCreated {
		t.Errorf("expected room after a removal, got %d", got.Code)
	}
}

func TestGetCompareTableHandler(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)
	addToCompare(r, sid, "ducati-panigale-v4")
	addToCompare(r, sid, "bmw-s1000rr")

	w := doJSON(r, http.MethodGet, "/compare/table", sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var rows []store.TableRow
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("expected 7 spec rows, got %d", len(rows))
	}
	for _, row := range rows {
		if len(row.Values) != 2 {
			t.Errorf("row %q: expected 2 values, got %d", row.Spec, len(row.Values))
		}
	}
}

func TestClearCompareHandler(t *testing.T) {
	r := api.NewRouter()
	sid := newSession(r)
	addToCompare(r, sid, "ducati-panigale-v4")

	w := doJSON(r, http.MethodDelete, "/compare", sid, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CompareResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Items) != 0 || !resp.CanAddMore {
		t.Errorf("expected an empty set, got %+v", resp)
	}
}
