package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/ports/outbound"
)

// IngredientRepository implements the pantry repository interface using
// GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create creates a new pantry item
func (r *IngredientRepository) Create(ctx context.Context, i *ingredient.Ingredient) error {
	model := IngredientToModel(i)

	return r.db.WithContext(ctx).Create(model).Error
}

// Update updates an existing pantry item
func (r *IngredientRepository) Update(ctx context.Context, i *ingredient.Ingredient) error {
	model := IngredientToModel(i)

	result := r.db.WithContext(ctx).Model(&IngredientModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("ingredient not found")
	}

	return nil
}

// Delete deletes a pantry item. Unknown ids are a no-op.
func (r *IngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&IngredientModel{}, "id = ?", id).Error
}

// FindByID finds a pantry item by id, returning (nil, nil) when the id
// is unknown
func (r *IngredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	var model IngredientModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToIngredient(&model), nil
}

// FindAll returns all pantry items in insertion order
func (r *IngredientRepository) FindAll(ctx context.Context) ([]*ingredient.Ingredient, error) {
	var models []IngredientModel

	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*ingredient.Ingredient, len(models))
	for i := range models {
		ingredients[i] = ModelToIngredient(&models[i])
	}
	return ingredients, nil
}
