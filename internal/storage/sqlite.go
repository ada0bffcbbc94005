package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/foodlist/internal/models"
)

// SQLiteStore keeps the catalog in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens the database at dbPath and runs migrations
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_foods_position ON foods(position)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// ListFoods returns all foods in display order
func (s *SQLiteStore) ListFoods(ctx context.Context) ([]models.Food, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, position, created_at
		FROM foods ORDER BY position, rowid
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
func (s *SQLiteStore) GetFood(ctx context.Context, id string) (*models.Food, error) {
	var f models.Food
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, position, created_at FROM foods WHERE id = ?
	`, id).Scan(&f.ID, &f.Name, &f.Position, &f.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateFood appends a food to the end of the list
func (s *SQLiteStore) CreateFood(ctx context.Context, name string) (*models.Food, error) {
	foods, err := s.BulkCreateFoods(ctx, []models.FoodItem{{Name: name}})
	if err != nil {
		return nil, err
	}
	return &foods[0], nil
}

// BulkCreateFoods appends items in order within a single transaction
func (s *SQLiteStore) BulkCreateFoods(ctx context.Context, items []models.FoodItem) ([]models.Food, error) {
	if err := validate(items); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM foods`).Scan(&next); err != nil {
		return nil, err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO foods (id, name, position, created_at) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	foods := make([]models.Food, 0, len(items))
	for i, item := range items {
		f := models.Food{
			ID:        uuid.New().String(),
			Name:      item.Name,
			Position:  next + i,
			CreatedAt: now,
		}
		if _, err := stmt.ExecContext(ctx, f.ID, f.Name, f.Position, f.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return foods, nil
}

// DeleteFood removes a food and reports whether it existed
func (s *SQLiteStore) DeleteFood(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM foods WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountFoods returns the number of foods
func (s *SQLiteStore) CountFoods(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n)
	return n, err
}
