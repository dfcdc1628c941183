// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/meal"
)

// MealService defines the use cases for the recipe catalog
type MealService interface {
	CreateMeal(ctx context.Context, cmd CreateMealCommand) (*MealDTO, error)
	UpdateMeal(ctx context.Context, cmd UpdateMealCommand) (*MealDTO, error)
	DeleteMeal(ctx context.Context, mealID uuid.UUID) error
	GetMealByID(ctx context.Context, mealID uuid.UUID) (*MealDTO, error)
	ListMeals(ctx context.Context, category *meal.Category) ([]MealDTO, error)
}

// CreateMealCommand contains data for creating a catalog entry
type CreateMealCommand struct {
	Title        string        `json:"title" validate:"required,max=200"`
	Description  string        `json:"description"`
	Category     meal.Category `json:"category" validate:"required"`
	PrepTime     int           `json:"prep_time" validate:"min=0"`
	CookTime     int           `json:"cook_time" validate:"min=0"`
	ServingSize  int           `json:"serving_size" validate:"min=1"`
	Instructions []string      `json:"instructions"`
	ImageURL     string        `json:"image_url"`
}

// UpdateMealCommand contains a partial-field update; nil fields are
// left untouched
type UpdateMealCommand struct {
	MealID       uuid.UUID      `json:"-"`
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Category     *meal.Category `json:"category"`
	PrepTime     *int           `json:"prep_time"`
	CookTime     *int           `json:"cook_time"`
	ServingSize  *int           `json:"serving_size"`
	Instructions *[]string      `json:"instructions"`
	ImageURL     *string        `json:"image_url"`
}

// MealDTO is the data transfer object for catalog entries
type MealDTO struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     meal.Category `json:"category"`
	PrepTime     int           `json:"prep_time"`
	CookTime     int           `json:"cook_time"`
	TotalTime    int           `json:"total_time"`
	ServingSize  int           `json:"serving_size"`
	Instructions []string      `json:"instructions"`
	ImageURL     string        `json:"image_url"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}
