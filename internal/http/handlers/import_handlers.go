package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/repo"
)

// csvMotorcycle is one parsed import row. Images and features are
// comma-separated cells; colors and variants are JSON-encoded cells.
type csvMotorcycle struct {
	motorcycle models.Motorcycle
	err        error
}

func parseMotorcycleCSV(file multipart.File) ([]csvMotorcycle, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvMotorcycle
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvMotorcycle{
			motorcycle: models.Motorcycle{
				Brand:         cell(record, "brand"),
				Model:         cell(record, "model"),
				Category:      cell(record, "category"),
				EngineCC:      parseInt(cell(record, "engine_cc")),
				EngineType:    cell(record, "engine_type"),
				PowerHP:       parseInt(cell(record, "power_hp")),
				TorqueNM:      parseInt(cell(record, "torque_nm")),
				TopSpeed:      parseInt(cell(record, "top_speed")),
				Mileage:       cell(record, "mileage"),
				FuelType:      cell(record, "fuel_type"),
				Transmission:  cell(record, "transmission"),
				Price:         parseFloat(cell(record, "price")),
				CountryOrigin: cell(record, "country_origin"),
				LaunchYear:    parseInt(cell(record, "launch_year")),
				Images:        splitList(cell(record, "images")),
				Description:   cell(record, "description"),
				Features:      splitList(cell(record, "features")),
			},
		}
		if s := cell(record, "colors"); s != "" {
			if err := json.Unmarshal([]byte(s), &row.motorcycle.Colors); err != nil {
				row.err = fmt.Errorf("invalid colors JSON")
			}
		}
		if s := cell(record, "variants"); s != "" {
			if err := json.Unmarshal([]byte(s), &row.motorcycle.Variants); err != nil {
				row.err = fmt.Errorf("invalid variants JSON")
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// findByBrandModel matches import rows against the catalog. Ids carry a
// timestamp token, so identity for import purposes is the brand+model pair.
func findByBrandModel(brand, model string) (models.Motorcycle, bool) {
	all, err := catalogRepo.GetAll()
	if err != nil {
		return models.Motorcycle{}, false
	}
	for _, m := range all {
		if strings.EqualFold(m.Brand, brand) && strings.EqualFold(m.Model, model) {
			return m, true
		}
	}
	return models.Motorcycle{}, false
}

// ImportMotorcyclesHandler godoc
// @Summary Import motorcycles via CSV
// @Description Images and features are comma-separated cells; colors and variants are JSON-encoded cells. Existing brand+model pairs are skipped, or updated with mode=update.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportMotorcyclesResult
// @Failure 400 {string} string "Invalid file"
// @Failure 403 {string} string "Forbidden"
// @Router /motorcycles/import [post]
func ImportMotorcyclesHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseMotorcycleCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	actor := GetUsernameFromContext(r)

	var imported int
	var errorsList []ValidationError

	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		if row.err != nil {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, row.err)})
			continue
		}

		m := row.motorcycle
		if validationErrors := validateMotorcycle(MotorcycleRequest{
			Brand:    m.Brand,
			Model:    m.Model,
			Category: m.Category,
			EngineCC: m.EngineCC,
			Price:    m.Price,
			Colors:   m.Colors,
			Variants: m.Variants,
		}); len(validationErrors) > 0 {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %s", rowNum, validationErrors[0].Description)})
			continue
		}

		if existing, ok := findByBrandModel(m.Brand, m.Model); ok {
			if mode == "skip" {
				errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %s %s already exists", rowNum, m.Brand, m.Model)})
				continue
			}
			patch := repo.MotorcyclePatch{
				Category:      &m.Category,
				EngineCC:      &m.EngineCC,
				EngineType:    &m.EngineType,
				PowerHP:       &m.PowerHP,
				TorqueNM:      &m.TorqueNM,
				TopSpeed:      &m.TopSpeed,
				Mileage:       &m.Mileage,
				FuelType:      &m.FuelType,
				Transmission:  &m.Transmission,
				Price:         &m.Price,
				CountryOrigin: &m.CountryOrigin,
				LaunchYear:    &m.LaunchYear,
				Images:        m.Images,
				Colors:        m.Colors,
				Variants:      m.Variants,
				Description:   &m.Description,
				Features:      m.Features,
			}
			if _, err := catalogRepo.Update(existing.ID, patch); err != nil {
				errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: failed to update %s %s", rowNum, m.Brand, m.Model)})
				continue
			}
			changeRepo.Log(existing.ID, "update", actor)
			imported++
			continue
		}

		created, err := catalogRepo.Create(m)
		if err != nil {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		changeRepo.Log(created.ID, "create", actor)
		imported++
	}

	writeJSON(w, http.StatusOK, ImportMotorcyclesResult{
		ImportedCount: imported,
		Errors:        errorsList,
	})
}
