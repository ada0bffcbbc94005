package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meur/foodlist/internal/models"
)

// PostgresStore keeps the catalog in PostgreSQL
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to dsn and runs migrations
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the pool
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			seq BIGSERIAL UNIQUE,
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_foods_position ON foods(position)`,
	}

	for _, m := range migrations {
		if _, err := s.pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// ListFoods returns all foods in display order
func (s *PostgresStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, position, created_at
		FROM foods ORDER BY position, seq
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Position, &f.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// GetFood returns a food by ID
func (s *PostgresStore) GetFood(ctx context.Context, id string) (*models.Food, error) {
	var f models.Food
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, position, created_at FROM foods WHERE id = $1
	`, id).Scan(&f.ID, &f.Name, &f.Position, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFood appends a food to the end of the list
func (s *PostgresStore) CreateFood(ctx context.Context, name string) (*models.Food, error) {
	foods, err := s.BulkCreateFoods(ctx, []models.FoodItem{{Name: name}})
	if err != nil {
		return nil, err
	}
	return &foods[0], nil
}

// BulkCreateFoods appends items in order with a single COPY
func (s *PostgresStore) BulkCreateFoods(ctx context.Context, items []models.FoodItem) ([]models.Food, error) {
	if err := validate(items); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Serialize writers so positions stay contiguous.
	if _, err := tx.Exec(ctx, `LOCK TABLE foods IN EXCLUSIVE MODE`); err != nil {
		return nil, err
	}

	var next int
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM foods`).Scan(&next); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	foods := make([]models.Food, 0, len(items))
	rows := make([][]interface{}, 0, len(items))
	for i, item := range items {
		f := models.Food{
			ID:        uuid.New().String(),
			Name:      item.Name,
			Position:  next + i,
			CreatedAt: now,
		}
		foods = append(foods, f)
		rows = append(rows, []interface{}{f.ID, f.Name, f.Position, f.CreatedAt})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"foods"},
		[]string{"id", "name", "position", "created_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return nil, fmt.Errorf("copy foods: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return foods, nil
}

// DeleteFood removes a food and reports whether it existed
func (s *PostgresStore) DeleteFood(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountFoods returns the number of foods
func (s *PostgresStore) CountFoods(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n)
	return n, err
}
