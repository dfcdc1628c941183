package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/ports/inbound"
)

// IngredientHandlers handles pantry requests
type IngredientHandlers struct {
	ingredients inbound.IngredientService
	logger      *zap.Logger
}

// NewIngredientHandlers creates a new ingredient handlers instance
func NewIngredientHandlers(ingredients inbound.IngredientService, logger *zap.Logger) *IngredientHandlers {
	return &IngredientHandlers{ingredients: ingredients, logger: logger}
}

// List handles GET /api/v1/ingredients
func (h *IngredientHandlers) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.ingredients.ListIngredients(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/ingredients/{id}
func (h *IngredientHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.ingredients.GetIngredientByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Create handles POST /api/v1/ingredients
func (h *IngredientHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreateIngredientCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.ingredients.CreateIngredient(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

// Update handles PUT /api/v1/ingredients/{id}
func (h *IngredientHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd inbound.UpdateIngredientCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	cmd.IngredientID = id

	result, err := h.ingredients.UpdateIngredient(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/ingredients/{id}
func (h *IngredientHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.ingredients.DeleteIngredient(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}

// AddProduct handles POST /api/v1/ingredients/{id}/products
func (h *IngredientHandlers) AddProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd inbound.AddProductCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.ingredients.AddProduct(r.Context(), id, cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

// RemoveProduct handles DELETE /api/v1/ingredients/{id}/products/{productID}
func (h *IngredientHandlers) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	productID, err := pathUUID(r, "productID")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.ingredients.RemoveProduct(r.Context(), id, productID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}

// SetDefaultProduct handles PUT /api/v1/ingredients/{id}/products/{productID}/default
func (h *IngredientHandlers) SetDefaultProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	productID, err := pathUUID(r, "productID")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.ingredients.SetDefaultProduct(r.Context(), id, productID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
