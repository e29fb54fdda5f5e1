package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	"github.com/motohub/moto-catalog/internal/models"
)

func TestGetMotorcyclesHandler(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []models.Motorcycle
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) == 0 {
		t.Fatal("expected a seeded catalog")
	}
	if resp[0].ID != "ducati-panigale-v4" {
		t.Errorf("expected catalog order, got %q first", resp[0].ID)
	}
}

func TestGetMotorcycleByIDHandler(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles/bmw-s1000rr", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp models.Motorcycle
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Brand != "BMW" {
		t.Errorf("expected BMW, got %q", resp.Brand)
	}

	w = doJSON(r, http.MethodGet, "/motorcycles/no-such-bike", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestSearchMotorcyclesHandler_CoversDescription(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles/search?q=motogp", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []models.Motorcycle
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "ducati-panigale-v4" {
		t.Errorf("expected the Panigale via its description, got %v", resp)
	}
}

func TestBrowseMotorcyclesHandler(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles/browse?category=sport&sort=price-asc", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.BrowseResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.Shown != len(resp.Data) {
		t.Errorf("expected shown %d to match the data, got %d", len(resp.Data), resp.Meta.Shown)
	}
	if resp.Meta.Total <= resp.Meta.Shown {
		t.Errorf("expected the total to exceed the sport subset, got %d of %d", resp.Meta.Shown, resp.Meta.Total)
	}
	for i := 1; i < len(resp.Data); i++ {
		if resp.Data[i].Price < resp.Data[i-1].Price {
			t.Errorf("expected ascending prices, got %v before %v", resp.Data[i-1].Price, resp.Data[i].Price)
		}
	}
}

func TestBrowseMotorcyclesHandler_TextSkipsDescription(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles/browse?q=motogp", "", nil)

	var resp handler.BrowseResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Meta.Shown != 0 {
		t.Errorf("expected no browse matches on a description-only term, got %d", resp.Meta.Shown)
	}
}

func TestFilterMotorcyclesHandler_InvalidPagination(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/motorcycles/filter?limit=0", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for limit=0, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/motorcycles/filter?offset=-1", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for offset=-1, got %d", w.Code)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []models.Category
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 10 {
		t.Errorf("expected 10 categories, got %d", len(resp))
	}
}

func TestGetBrandsHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/brands", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 16 {
		t.Errorf("expected 16 brands, got %d", len(resp))
	}
}
