package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// MealHandlers handles catalog requests
type MealHandlers struct {
	meals  inbound.MealService
	logger *zap.Logger
}

// NewMealHandlers creates a new meal handlers instance
func NewMealHandlers(meals inbound.MealService, logger *zap.Logger) *MealHandlers {
	return &MealHandlers{meals: meals, logger: logger}
}

// List handles GET /api/v1/meals with an optional ?category= filter
func (h *MealHandlers) List(w http.ResponseWriter, r *http.Request) {
	var category *meal.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		c := meal.Category(raw)
		if !c.Valid() {
			writeError(w, r, h.logger, errors.NewValidationError("unknown category: "+raw))
			return
		}
		category = &c
	}

	result, err := h.meals.ListMeals(r.Context(), category)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/meals/{id}
func (h *MealHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.meals.GetMealByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Create handles POST /api/v1/meals
func (h *MealHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateMealCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.meals.CreateMeal(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

// Update handles PUT /api/v1/meals/{id}
func (h *MealHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd inbound.UpdateMealCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	cmd.MealID = id

	result, err := h.meals.UpdateMeal(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/meals/{id}
func (h *MealHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.meals.DeleteMeal(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
