package api

import (
	"net/http"

	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/page"
)

// handlePage serves the template with the catalog rendered into the food list
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	foods, err := s.store.ListFoods(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list foods")
		http.Error(w, "Failed to fetch foods", http.StatusInternalServerError)
		return
	}

	out, err := page.Build(s.template, models.Items(foods))
	if err != nil {
		s.log.WithError(err).Error("render page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
