package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meur/foodlist/internal/models"
)

// ErrEmptyName is returned when a food without a name is added
var ErrEmptyName = errors.New("food name is required")

// Store is the menu catalog. Foods are listed in the order they were added.
type Store interface {
	ListFoods(ctx context.Context) ([]models.Food, error)
	// GetFood returns nil, nil when no food has the given id
	GetFood(ctx context.Context, id string) (*models.Food, error)
	CreateFood(ctx context.Context, name string) (*models.Food, error)
	BulkCreateFoods(ctx context.Context, items []models.FoodItem) ([]models.Food, error)
	DeleteFood(ctx context.Context, id string) (bool, error)
	CountFoods(ctx context.Context) (int, error)
	Close() error
}

// Open returns the store for driver ("sqlite" or "postgres")
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
		return NewSQLite(dsn)
	case "postgres", "postgresql", "pgx":
		return NewPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// SeedDefaults adds the built-in menu when the catalog is empty and returns
// the number of foods added.
func SeedDefaults(ctx context.Context, s Store) (int, error) {
	n, err := s.CountFoods(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	foods, err := s.BulkCreateFoods(ctx, models.DefaultFoods())
	if err != nil {
		return 0, fmt.Errorf("failed to seed defaults: %w", err)
	}
	return len(foods), nil
}

func validate(items []models.FoodItem) error {
	for i, item := range items {
		if item.Name == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyName)
		}
	}
	return nil
}
