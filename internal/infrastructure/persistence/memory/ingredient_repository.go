package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// IngredientRepository is an in-memory pantry store
type IngredientRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*ingredient.Ingredient
}

// NewIngredientRepository creates an empty in-memory ingredient
// repository
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{
		byID: make(map[uuid.UUID]*ingredient.Ingredient),
	}
}

var _ outbound.IngredientRepository = (*IngredientRepository)(nil)

// Create stores a new ingredient
func (r *IngredientRepository) Create(ctx context.Context, i *ingredient.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[i.ID()]; exists {
		return fmt.Errorf("ingredient %s already exists", i.ID())
	}
	r.byID[i.ID()] = i
	r.order = append(r.order, i.ID())
	return nil
}

// Update replaces a stored ingredient; unknown ids are an error
func (r *IngredientRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[i.ID()]; !exists {
		return fmt.Errorf("ingredient %s not found", i.ID())
	}
	r.byID[i.ID()] = i
	return nil
}

// Delete removes an ingredient; deleting an unknown id is a no-op
func (r *IngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return nil
	}
	delete(r.byID, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// FindByID returns (nil, nil) when the id is unknown
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// FindAll returns every ingredient in insertion order
func (r *IngredientRepository) FindAll(ctx context.Context) ([]*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*ingredient.Ingredient, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}
