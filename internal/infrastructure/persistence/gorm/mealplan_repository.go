package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// MealPlanRepository implements the plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create creates a new plan
func (r *MealPlanRepository) Create(ctx context.Context, p *mealplan.MealPlan) error {
	model := PlanToModel(p)

	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing plan
func (r *MealPlanRepository) Update(ctx context.Context, p *mealplan.MealPlan) error {
	model := PlanToModel(p)

	result := r.db.WithContext(ctx).Model(&MealPlanModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("meal plan not found")
	}

	return nil
}

// Delete deletes a plan. Unknown ids are a no-op.
func (r *MealPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&MealPlanModel{}, "id = ?", id).Error
}

// FindByID finds a plan by id, returning (nil, nil) when the id is
// unknown
func (r *MealPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToPlan(&model), nil
}

// FindAll returns all plans in insertion order
func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*mealplan.MealPlan, error) {
	var models []MealPlanModel

	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToPlans(models), nil
}

// FindByDateRange returns plans scheduled in [from, to) in insertion
// order
func (r *MealPlanRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*mealplan.MealPlan, error) {
	var models []MealPlanModel

	result := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToPlans(models), nil
}

func modelsToPlans(models []MealPlanModel) []*mealplan.MealPlan {
	plans := make([]*mealplan.MealPlan, len(models))
	for i := range models {
		plans[i] = ModelToPlan(&models[i])
	}
	return plans
}
