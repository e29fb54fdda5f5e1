package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	"github.com/motohub/moto-catalog/internal/models"
)

func TestCreateMotorcycleHandler_Valid(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := createMotorcycle(r, validMotorcycle())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Motorcycle
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "honda-cbr650r-") {
		t.Errorf("expected a generated slug id, got %q", resp.ID)
	}

	// The creation is logged.
	req := httptest.NewRequest(http.MethodGet, "/catalog/changes?motorcycle_id="+resp.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	cw := httptest.NewRecorder()
	r.ServeHTTP(cw, req)

	var changes handler.CatalogChangesResult
	if err := json.NewDecoder(cw.Body).Decode(&changes); err != nil {
		t.Fatalf("error decoding changes: %v", err)
	}
	if changes.Meta.TotalCount != 1 || changes.Data[0].Action != "create" {
		t.Errorf("expected one create entry, got %+v", changes)
	}
	if changes.Data[0].Actor != "admin" {
		t.Errorf("expected the actor to be admin, got %q", changes.Data[0].Actor)
	}
}

func TestCreateMotorcycleHandler_Invalid(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	tests := []struct {
		name           string
		mutate         func(*handler.MotorcycleRequest)
		expectedErrors []string
	}{
		{
			name:           "Empty brand and model",
			mutate:         func(m *handler.MotorcycleRequest) { m.Brand = ""; m.Model = "" },
			expectedErrors: []string{"Brand", "Model"},
		},
		{
			name:           "Unknown category",
			mutate:         func(m *handler.MotorcycleRequest) { m.Category = "hovercraft" },
			expectedErrors: []string{"Category"},
		},
		{
			name:           "Non-positive price",
			mutate:         func(m *handler.MotorcycleRequest) { m.Price = 0 },
			expectedErrors: []string{"Price"},
		},
		{
			name:           "No colors",
			mutate:         func(m *handler.MotorcycleRequest) { m.Colors = nil },
			expectedErrors: []string{"Colors"},
		},
		{
			name: "Duplicate variant names",
			mutate: func(m *handler.MotorcycleRequest) {
				m.Variants = []models.Variant{{Name: "Standard", Price: 1}, {Name: "Standard", Price: 2}}
			},
			expectedErrors: []string{"Variants"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validMotorcycle()
			tt.mutate(&payload)

			w := createMotorcycle(r, payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}

			var resp []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateMotorcycleHandler_RequiresAuth(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	body, _ := json.Marshal(validMotorcycle())
	req := httptest.NewRequest(http.MethodPost, "/motorcycles", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestCreateMotorcycleHandler_RequiresAdminRole(t *testing.T) {
	t.Cleanup(resetCatalog)
	resetRateLimiter()
	r := api.NewRouter()

	// A plain user can log in but not mutate the catalog.
	payload := handler.CredentialsRequest{Username: "rider", Password: "pw"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected registration to succeed, got %d", w.Code)
	}

	userToken, err := generateToken(r, "rider", "pw")
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}

	body, _ = json.Marshal(validMotorcycle())
	req = httptest.NewRequest(http.MethodPost, "/motorcycles", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for a non-admin, got %d", w.Code)
	}
}

func TestUpdateMotorcycleHandler_PartialPatch(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	newPrice := 27999.0
	body, _ := json.Marshal(handler.MotorcyclePatchRequest{Price: &newPrice})
	req := httptest.NewRequest(http.MethodPut, "/motorcycles/ducati-panigale-v4", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp models.Motorcycle
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Price != newPrice {
		t.Errorf("expected price %.2f, got %.2f", newPrice, resp.Price)
	}
	if resp.Brand != "Ducati" || len(resp.Variants) == 0 {
		t.Error("expected untouched fields to survive the patch")
	}
}

func TestUpdateMotorcycleHandler_InvalidPatchMergesNothing(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	badPrice := -1.0
	empty := ""
	body, _ := json.Marshal(handler.MotorcyclePatchRequest{Price: &badPrice, Brand: &empty})
	req := httptest.NewRequest(http.MethodPut, "/motorcycles/ducati-panigale-v4", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	// The stored record is untouched.
	get := doJSON(r, http.MethodGet, "/motorcycles/ducati-panigale-v4", "", nil)
	var resp models.Motorcycle
	json.NewDecoder(get.Body).Decode(&resp)
	if resp.Price != 26999 || resp.Brand != "Ducati" {
		t.Errorf("expected the record to be unchanged, got %+v", resp)
	}
}

func TestUpdateMotorcycleHandler_NotFound(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	newPrice := 100.0
	body, _ := json.Marshal(handler.MotorcyclePatchRequest{Price: &newPrice})
	req := httptest.NewRequest(http.MethodPut, "/motorcycles/no-such-bike", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteMotorcycleHandler(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodDelete, "/motorcycles/zero-sr-f", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	get := doJSON(r, http.MethodGet, "/motorcycles/zero-sr-f", "", nil)
	if get.Code != http.StatusNotFound {
		t.Errorf("expected the bike to be gone, got %d", get.Code)
	}
}

func TestDeleteMotorcycleHandler_CartKeepsSnapshot(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	sid := newSession(r)
	addToCart(r, sid, "zero-sr-f", "", "")

	req := httptest.NewRequest(http.MethodDelete, "/motorcycles/zero-sr-f", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// The cart line survives the catalog delete.
	cw := doJSON(r, http.MethodGet, "/cart", sid, nil)
	cart := decodeCart(t, cw)
	if len(cart.Items) != 1 || cart.Items[0].Motorcycle.ID != "zero-sr-f" {
		t.Errorf("expected the snapshot to survive, got %+v", cart.Items)
	}
}

func TestGetCatalogChangesHandler_BadTimestamp(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/catalog/changes?since=yesterday", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
