package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// MealPlanRepository is an in-memory plan store. Listings preserve
// insertion order, which the calendar views rely on.
type MealPlanRepository struct {
	mu    sync.RWMutex
	order []uuid.UUID
	byID  map[uuid.UUID]*mealplan.MealPlan
}

// NewMealPlanRepository creates an empty in-memory plan repository
func NewMealPlanRepository() *MealPlanRepository {
	return &MealPlanRepository{
		byID: make(map[uuid.UUID]*mealplan.MealPlan),
	}
}

var _ outbound.MealPlanRepository = (*MealPlanRepository)(nil)

// Create stores a new plan
func (r *MealPlanRepository) Create(ctx context.Context, p *mealplan.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID()]; exists {
		return fmt.Errorf("meal plan %s already exists", p.ID())
	}
	r.byID[p.ID()] = p
	r.order = append(r.order, p.ID())
	return nil
}

// Update replaces a stored plan; unknown ids are an error
func (r *MealPlanRepository) Update(ctx context.Context, p *mealplan.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID()]; !exists {
		return fmt.Errorf("meal plan %s not found", p.ID())
	}
	r.byID[p.ID()] = p
	return nil
}

// Delete removes a plan; deleting an unknown id is a no-op
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
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
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byID[id], nil
}

// FindAll returns every plan in insertion order
func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*mealplan.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*mealplan.MealPlan, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result, nil
}

// FindByDateRange returns plans with from <= date < to, in insertion
// order
func (r *MealPlanRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*mealplan.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*mealplan.MealPlan
	for _, id := range r.order {
		p := r.byID[id]
		if !p.Date().Before(from) && p.Date().Before(to) {
			result = append(result, p)
		}
	}
	return result, nil
}
