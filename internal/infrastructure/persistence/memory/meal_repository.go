package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// MealRepository is an in-memory catalog store. Listings preserve
// insertion order.
type MealRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*meal.Meal
}

// NewMealRepository creates an empty in-memory meal repository
func NewMealRepository() *MealRepository {
	return &MealRepository{
		byID: make(map[uuid.UUID]*meal.Meal),
	}
}

var _ outbound.MealRepository = (*MealRepository)(nil)

// Create stores a new meal
func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID()]; exists {
		return fmt.Errorf("meal %s already exists", m.ID())
	}
	r.byID[m.ID()] = m
	r.order = append(r.order, m.ID())
	return nil
}

// Update replaces a stored meal; unknown ids are an error
func (r *MealRepository) Update(ctx context.Context, m *meal.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID()]; !exists {
		return fmt.Errorf("meal %s not found", m.ID())
	}
	r.byID[m.ID()] = m
	return nil
}

// Delete removes a meal; deleting an unknown id is a no-op
func (r *MealRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
func (r *MealRepository) FindByID(ctx context.Context, id uuid.UUID) (*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// FindAll returns every meal in insertion order
func (r *MealRepository) FindAll(ctx context.Context) ([]*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*meal.Meal, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

// FindByCategory returns matching meals in insertion order
func (r *MealRepository) FindByCategory(ctx context.Context, category meal.Category) ([]*meal.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*meal.Meal
	for _, id := range r.order {
		if m := r.byID[id]; m.Category() == category {
			result = append(result, m)
		}
	}
	return result, nil
}
