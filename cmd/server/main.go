package main

import (
	"context"
	"flag"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/meur/foodlist/internal/api"
	"github.com/meur/foodlist/internal/config"
	"github.com/meur/foodlist/internal/page"
	"github.com/meur/foodlist/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := cfg.Log.Logger()

	// Parse flags
	port := flag.String("port", cfg.HTTP.Port, "Server port")
	driver := flag.String("store", cfg.Store.Driver, "Store driver (sqlite or postgres)")
	dsn := flag.String("db", "", "SQLite path or Postgres URL (derived from config for -store when empty)")
	tmplPath := flag.String("template", cfg.Page.TemplatePath, "Page template (built-in when empty)")
	staticDir := flag.String("static", cfg.HTTP.StaticDir, "Directory served at /static/")
	seed := flag.Bool("seed", cfg.Store.SeedDefaults, "Seed the default menu into an empty catalog")
	flag.Parse()

	ctx := context.Background()

	// Initialize storage
	store, err := storage.Open(ctx, *driver, cfg.Store.ForDriver(*driver, *dsn))
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	if *seed {
		n, err := storage.SeedDefaults(ctx, store)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if n > 0 {
			log.WithField("count", n).Info("Seeded default menu")
		}
	}

	tmpl, err := page.LoadTemplate(*tmplPath)
	if err != nil {
		log.Fatalf("Failed to load template: %v", err)
	}

	// Create router
	srv := api.New(store, tmpl, log)

	if *staticDir != "" {
		FileServer(srv.Router(), "/static", http.Dir(*staticDir))
	}

	log.WithFields(logrus.Fields{
		"store":    *driver,
		"template": *tmplPath,
	}).Infof("foodlist starting on http://localhost:%s", *port)

	if err := http.ListenAndServe(":"+*port, srv); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}
