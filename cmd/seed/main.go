package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/meur/foodlist/internal/config"
	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := cfg.Log.Logger()

	driver := flag.String("store", cfg.Store.Driver, "Store driver (sqlite or postgres)")
	dsn := flag.String("db", "", "SQLite path or Postgres URL (derived from config for -store when empty)")
	foodsPath := flag.String("foods", "", "JSON file with [{\"name\": ...}] (default menu when empty)")
	flag.Parse()

	ctx := context.Background()

	store, err := storage.Open(ctx, *driver, cfg.Store.ForDriver(*driver, *dsn))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	if *foodsPath == "" {
		n, err := storage.SeedDefaults(ctx, store)
		if err != nil {
			log.Fatalf("Failed to seed: %v", err)
		}
		if n == 0 {
			log.Info("Catalog is not empty, nothing seeded")
			return
		}
		log.WithField("count", n).Info("Seeded default menu")
		return
	}

	items, err := readFoods(*foodsPath)
	if err != nil {
		log.Fatalf("Failed to read foods: %v", err)
	}

	foods, err := store.BulkCreateFoods(ctx, items)
	if err != nil {
		log.Fatalf("Failed to import foods: %v", err)
	}
	log.WithField("count", len(foods)).Infof("Imported foods from %s", *foodsPath)
}

func readFoods(path string) ([]models.FoodItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []models.FoodItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
