package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	"github.com/motohub/moto-catalog/internal/models"
)

const importHeader = "brand,model,category,engine_cc,price,fuel_type,images,colors,variants,features\n"

func importCSV(r http.Handler, csvContent, query string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvContent, "motorcycles.csv")

	req := httptest.NewRequest(http.MethodPost, "/motorcycles/import"+query, buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportMotorcyclesHandler_Valid(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	csv := importHeader +
		`Honda,CB750 Hornet,naked,755,8499,Petrol,https://example.com/hornet.jpg,"[{""name"":""Matte Black"",""hex"":""#1A1A1A""}]","[{""name"":""Standard"",""price"":8499}]","ABS, Ride Modes"` + "\n"

	w := importCSV(r, csv, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ImportMotorcyclesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedCount != 1 || len(resp.Errors) != 0 {
		t.Fatalf("expected a clean import, got %+v", resp)
	}

	// The imported bike is searchable and fully populated.
	sw := doJSON(r, http.MethodGet, "/motorcycles/search?q=hornet", "", nil)
	var found []models.Motorcycle
	json.NewDecoder(sw.Body).Decode(&found)
	if len(found) != 1 {
		t.Fatalf("expected the imported bike, got %d results", len(found))
	}
	if len(found[0].Colors) != 1 || found[0].Colors[0].Name != "Matte Black" {
		t.Errorf("expected decoded colors, got %v", found[0].Colors)
	}
	if len(found[0].Features) != 2 {
		t.Errorf("expected split features, got %v", found[0].Features)
	}
}

func TestImportMotorcyclesHandler_InvalidRowsAreReported(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	csv := importHeader +
		`,CB750 Hornet,naked,755,8499,Petrol,,"[{""name"":""Black""}]","[{""name"":""Standard"",""price"":8499}]",` + "\n" +
		`Honda,CB500X,adventure,471,7299,Petrol,,"[{""name"":""Red""}]","[{""name"":""Standard"",""price"":7299}]",` + "\n"

	w := importCSV(r, csv, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ImportMotorcyclesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedCount != 1 {
		t.Errorf("expected 1 imported row, got %d", resp.ImportedCount)
	}
	if len(resp.Errors) != 1 || !strings.Contains(resp.Errors[0].Description, "row 2") {
		t.Errorf("expected a row 2 error, got %+v", resp.Errors)
	}
}

func TestImportMotorcyclesHandler_SkipsExistingByDefault(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	// The seed catalog already has a Ducati Panigale V4.
	csv := importHeader +
		`Ducati,Panigale V4,sport,1103,1,Petrol,,"[{""name"":""Red""}]","[{""name"":""Standard"",""price"":1}]",` + "\n"

	w := importCSV(r, csv, "")
	var resp handler.ImportMotorcyclesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedCount != 0 || len(resp.Errors) != 1 {
		t.Fatalf("expected the row to be skipped, got %+v", resp)
	}

	// The stored record keeps its price.
	gw := doJSON(r, http.MethodGet, "/motorcycles/ducati-panigale-v4", "", nil)
	var bike models.Motorcycle
	json.NewDecoder(gw.Body).Decode(&bike)
	if bike.Price != 26999 {
		t.Errorf("expected the price to be untouched, got %.2f", bike.Price)
	}
}

func TestImportMotorcyclesHandler_UpdateMode(t *testing.T) {
	t.Cleanup(resetCatalog)
	r := api.NewRouter()

	csv := importHeader +
		`Ducati,Panigale V4,sport,1103,27999,Petrol,,"[{""name"":""Ducati Red"",""hex"":""#CC0000""}]","[{""name"":""Standard"",""price"":27999}]",` + "\n"

	w := importCSV(r, csv, "?mode=update")
	var resp handler.ImportMotorcyclesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.ImportedCount != 1 || len(resp.Errors) != 0 {
		t.Fatalf("expected the row to update, got %+v", resp)
	}

	gw := doJSON(r, http.MethodGet, "/motorcycles/ducati-panigale-v4", "", nil)
	var bike models.Motorcycle
	json.NewDecoder(gw.Body).Decode(&bike)
	if bike.Price != 27999 {
		t.Errorf("expected the updated price, got %.2f", bike.Price)
	}
	// The id survives an update.
	if bike.ID != "ducati-panigale-v4" {
		t.Errorf("expected a stable id, got %q", bike.ID)
	}
}

func TestImportMotorcyclesHandler_MissingFile(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/motorcycles/import", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}
