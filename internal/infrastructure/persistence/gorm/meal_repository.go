package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// MealRepository implements the catalog repository interface using GORM
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository
func NewMealRepository(db *gorm.DB) outbound.MealRepository {
	return &MealRepository{db: db}
}

// Create creates a new catalog entry
func (r *MealRepository) Create(ctx context.Context, m *meal.Meal) error {
	model := MealToModel(m)

	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing catalog entry
func (r *MealRepository) Update(ctx context.Context, m *meal.Meal) error {
	model := MealToModel(m)

	result := r.db.WithContext(ctx).Model(&MealModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("meal not found")
	}

	return nil
}

// Delete deletes a catalog entry. Unknown ids are a no-op.
func (r *MealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&MealModel{}, "id = ?", id).Error
}

// FindByID finds a catalog entry by id, returning (nil, nil) when the
// id is unknown
func (r *MealRepository) FindByID(ctx context.Context, id uuid.UUID) (*meal.Meal, error) {
	var model MealModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToMeal(&model), nil
}

// FindAll returns all catalog entries in insertion order
func (r *MealRepository) FindAll(ctx context.Context) ([]*meal.Meal, error) {
	var models []MealModel

	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToMeals(models), nil
}

// FindByCategory returns catalog entries of one category in insertion
// order
func (r *MealRepository) FindByCategory(ctx context.Context, category meal.Category) ([]*meal.Meal, error) {
	var models []MealModel

	result := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	return modelsToMeals(models), nil
}

func modelsToMeals(models []MealModel) []*meal.Meal {
	meals := make([]*meal.Meal, len(models))
	for i := range models {
		meals[i] = ModelToMeal(&models[i])
	}
	return meals
}
