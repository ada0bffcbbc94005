package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meur/foodlist/internal/models"
	"github.com/meur/foodlist/internal/storage"
)

// handleListFoods returns the whole catalog in display order
func (s *Server) handleListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := s.store.ListFoods(r.Context())
	if err != nil {
		s.log.WithError(err).Error("list foods")
		respondError(w, http.StatusInternalServerError, "Failed to fetch foods")
		return
	}

	respondJSON(w, http.StatusOK, models.FoodList{
		Items:      foods,
		TotalCount: len(foods),
	})
}

// handleCreateFood appends a food to the catalog
func (s *Server) handleCreateFood(w http.ResponseWriter, r *http.Request) {
	var req models.FoodCreate
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	food, err := s.store.CreateFood(r.Context(), req.Name)
	if errors.Is(err, storage.ErrEmptyName) {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err != nil {
		s.log.WithError(err).Error("create food")
		respondError(w, http.StatusInternalServerError, "Failed to create food")
		return
	}

	respondJSON(w, http.StatusCreated, food)
}

// handleGetFood returns a single food by ID
func (s *Server) handleGetFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	food, err := s.store.GetFood(r.Context(), id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("get food")
		respondError(w, http.StatusInternalServerError, "Failed to fetch food")
		return
	}
	if food == nil {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}

	respondJSON(w, http.StatusOK, food)
}

// handleDeleteFood removes a food by ID
func (s *Server) handleDeleteFood(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := s.store.DeleteFood(r.Context(), id)
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("delete food")
		respondError(w, http.StatusInternalServerError, "Failed to delete food")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
