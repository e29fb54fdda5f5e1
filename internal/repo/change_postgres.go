package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/motohub/moto-catalog/internal/models"
)

type PostgresChangeRepository struct {
	db *sql.DB
}

func NewPostgresChangeRepository(db *sql.DB) *PostgresChangeRepository {
	return &PostgresChangeRepository{db: db}
}

func (r *PostgresChangeRepository) Log(motorcycleID, action, actor string) error {
	query := `INSERT INTO catalog_changes (motorcycle_id, action, actor, created_at) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, motorcycleID, action, actor, time.Now().Format(time.RFC3339))
	return err
}

func (r *PostgresChangeRepository) Get(cf ChangeFilter) ([]models.CatalogChange, int, error) {
	conditions := ""
	args := []any{}
	argIdx := 1

	addCondition := func(clause string, value any) {
		conditions += fmt.Sprintf(" AND %s $%d", clause, argIdx)
		args = append(args, value)
		argIdx++
	}

	if cf.MotorcycleID != "" {
		addCondition("motorcycle_id =", cf.MotorcycleID)
	}
	if cf.Action != "" {
		addCondition("action =", cf.Action)
	}
	if cf.Since != nil {
		addCondition("created_at >=", cf.Since.Format(time.RFC3339))
	}
	if cf.Until != nil {
		addCondition("created_at <=", cf.Until.Format(time.RFC3339))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	countQuery := "SELECT COUNT(*) FROM catalog_changes WHERE 1=1" + conditions
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, motorcycle_id, action, actor, created_at FROM catalog_changes WHERE 1=1` +
		conditions + ` ORDER BY id`
	if cf.Limit != nil && *cf.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *cf.Limit)
		argIdx++
	}
	if cf.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *cf.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	changes := []models.CatalogChange{}
	for rows.Next() {
		var c models.CatalogChange
		if err := rows.Scan(&c.ID, &c.MotorcycleID, &c.Action, &c.Actor, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		changes = append(changes, c)
	}
	return changes, totalCount, rows.Err()
}
