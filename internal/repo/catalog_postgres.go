package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/motohub/moto-catalog/internal/models"
)

// PostgresCatalogRepository backs the catalog with Postgres for deployments
// where the admin surface mutates the catalog. Structured fields (images,
// colors, variants, features) live in jsonb columns.
type PostgresCatalogRepository struct {
	db         *sql.DB
	categories []models.Category
	brands     []string
}

func NewPostgresCatalogRepository(db *sql.DB, categories []models.Category, brands []string) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db, categories: categories, brands: brands}
}

const motorcycleColumns = `id, brand, model, category, engine_cc, engine_type, power_hp, torque_nm,
	top_speed, mileage, fuel_type, transmission, price, country_origin, launch_year,
	images, colors, variants, description, features`

func scanMotorcycle(row interface{ Scan(...any) error }) (models.Motorcycle, error) {
	var m models.Motorcycle
	var images, colors, variants, features []byte

	err := row.Scan(&m.ID, &m.Brand, &m.Model, &m.Category, &m.EngineCC, &m.EngineType,
		&m.PowerHP, &m.TorqueNM, &m.TopSpeed, &m.Mileage, &m.FuelType, &m.Transmission,
		&m.Price, &m.CountryOrigin, &m.LaunchYear, &images, &colors, &variants,
		&m.Description, &features)
	if err != nil {
		return models.Motorcycle{}, err
	}

	if err := json.Unmarshal(images, &m.Images); err != nil {
		return models.Motorcycle{}, err
	}
	if err := json.Unmarshal(colors, &m.Colors); err != nil {
		return models.Motorcycle{}, err
	}
	if err := json.Unmarshal(variants, &m.Variants); err != nil {
		return models.Motorcycle{}, err
	}
	if err := json.Unmarshal(features, &m.Features); err != nil {
		return models.Motorcycle{}, err
	}
	return m, nil
}

func motorcycleArgs(m models.Motorcycle) ([]any, error) {
	images, err := json.Marshal(m.Images)
	if err != nil {
		return nil, err
	}
	colors, err := json.Marshal(m.Colors)
	if err != nil {
		return nil, err
	}
	variants, err := json.Marshal(m.Variants)
	if err != nil {
		return nil, err
	}
	features, err := json.Marshal(m.Features)
	if err != nil {
		return nil, err
	}
	return []any{m.ID, m.Brand, m.Model, m.Category, m.EngineCC, m.EngineType,
		m.PowerHP, m.TorqueNM, m.TopSpeed, m.Mileage, m.FuelType, m.Transmission,
		m.Price, m.CountryOrigin, m.LaunchYear, images, colors, variants,
		m.Description, features}, nil
}

func (r *PostgresCatalogRepository) Create(m models.Motorcycle) (models.Motorcycle, error) {
	if m.ID == "" {
		m.ID = NewMotorcycleID(m.Brand, m.Model)
	}
	args, err := motorcycleArgs(m)
	if err != nil {
		return models.Motorcycle{}, err
	}

	query := `INSERT INTO motorcycles (` + motorcycleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Motorcycle{}, err
	}
	return m, nil
}

func (r *PostgresCatalogRepository) GetAll() ([]models.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles ORDER BY position`
	return r.queryMotorcycles(query)
}

func (r *PostgresCatalogRepository) queryMotorcycles(query string, args ...any) ([]models.Motorcycle, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	motorcycles := []models.Motorcycle{}
	for rows.Next() {
		m, err := scanMotorcycle(rows)
		if err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, m)
	}
	return motorcycles, rows.Err()
}

func (r *PostgresCatalogRepository) GetByID(id string) (models.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	m, err := scanMotorcycle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Motorcycle{}, ErrMotorcycleNotFound
	}
	return m, err
}

func (r *PostgresCatalogRepository) ByCategory(categoryID string) ([]models.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE category = $1 ORDER BY position`
	return r.queryMotorcycles(query, categoryID)
}

func (r *PostgresCatalogRepository) ByBrand(brand string) ([]models.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE LOWER(brand) = LOWER($1) ORDER BY position`
	return r.queryMotorcycles(query, brand)
}

func (r *PostgresCatalogRepository) Search(q string) ([]models.Motorcycle, error) {
	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles
		WHERE brand ILIKE $1 OR model ILIKE $1 OR category ILIKE $1 OR description ILIKE $1
		ORDER BY position`
	return r.queryMotorcycles(query, "%"+q+"%")
}

func (r *PostgresCatalogRepository) Filter(cf CatalogFilter) ([]models.Motorcycle, int, error) {
	conditions := ""
	args := []any{}
	argIdx := 1

	addCondition := func(clause string, value any) {
		conditions += fmt.Sprintf(" AND %s $%d", clause, argIdx)
		args = append(args, value)
		argIdx++
	}

	if cf.Brand != "" {
		addCondition("brand =", cf.Brand)
	}
	if cf.Category != "" {
		addCondition("category =", cf.Category)
	}
	if cf.MinPrice != nil {
		addCondition("price >=", *cf.MinPrice)
	}
	if cf.MaxPrice != nil {
		addCondition("price <=", *cf.MaxPrice)
	}
	if cf.MinEngine != nil {
		addCondition("engine_cc >=", *cf.MinEngine)
	}
	if cf.MaxEngine != nil {
		addCondition("engine_cc <=", *cf.MaxEngine)
	}
	if cf.FuelType != "" {
		addCondition("fuel_type =", cf.FuelType)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM motorcycles WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + motorcycleColumns + ` FROM motorcycles WHERE 1=1` + conditions + ` ORDER BY position`
	if cf.Limit != nil && *cf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *cf.Limit)
		argIdx++
	}
	if cf.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *cf.Offset)
	}

	motorcycles, err := r.queryMotorcycles(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return motorcycles, totalCount, nil
}

func (r *PostgresCatalogRepository) Update(id string, patch MotorcyclePatch) (models.Motorcycle, error) {
	// Read-merge-write keeps the partial-update semantics identical to the
	// in-memory repository.
	m, err := r.GetByID(id)
	if err != nil {
		return models.Motorcycle{}, err
	}
	patch.applyTo(&m)

	args, err := motorcycleArgs(m)
	if err != nil {
		return models.Motorcycle{}, err
	}

	query := `UPDATE motorcycles SET brand = $2, model = $3, category = $4, engine_cc = $5,
		engine_type = $6, power_hp = $7, torque_nm = $8, top_speed = $9, mileage = $10,
		fuel_type = $11, transmission = $12, price = $13, country_origin = $14,
		launch_year = $15, images = $16, colors = $17, variants = $18,
		description = $19, features = $20 WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Motorcycle{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Motorcycle{}, ErrMotorcycleNotFound
	}
	return m, nil
}

func (r *PostgresCatalogRepository) Delete(id string) error {
	query := `DELETE FROM motorcycles WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMotorcycleNotFound
	}
	return nil
}

func (r *PostgresCatalogRepository) Brands() []string {
	return r.brands
}

func (r *PostgresCatalogRepository) Categories() []models.Category {
	return r.categories
}
