package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
)

// IngredientService defines the use cases for the pantry inventory
type IngredientService interface {
	CreateIngredient(ctx context.Context, cmd CreateIngredientCommand) (*IngredientDTO, error)
	UpdateIngredient(ctx context.Context, cmd UpdateIngredientCommand) (*IngredientDTO, error)
	DeleteIngredient(ctx context.Context, ingredientID uuid.UUID) error
	GetIngredientByID(ctx context.Context, ingredientID uuid.UUID) (*IngredientDTO, error)
	ListIngredients(ctx context.Context) ([]IngredientDTO, error)

	AddProduct(ctx context.Context, ingredientID uuid.UUID, cmd AddProductCommand) (*IngredientDTO, error)
	RemoveProduct(ctx context.Context, ingredientID, productID uuid.UUID) error
	SetDefaultProduct(ctx context.Context, ingredientID, productID uuid.UUID) error
}

// NutrientsDTO mirrors the per-100g nutrient profile
type NutrientsDTO struct {
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
	Calories float64 `json:"calories"`
}

// CreateIngredientCommand contains data for creating a pantry item
type CreateIngredientCommand struct {
	Name          string          `json:"name" validate:"required"`
	Type          ingredient.Type `json:"type" validate:"required"`
	ImageURL      string          `json:"image_url"`
	Nutrients     NutrientsDTO    `json:"nutrients"`
	CurrentAmount float64         `json:"current_amount" validate:"min=0"`
	ServingSize   float64         `json:"serving_size"`
	Unit          ingredient.Unit `json:"unit" validate:"required"`
	OtherUnit     string          `json:"other_unit,omitempty"`
}

// UpdateIngredientCommand contains a partial-field update; nil fields
// are left untouched. Unit and OtherUnit travel together.
type UpdateIngredientCommand struct {
	IngredientID  uuid.UUID        `json:"-"`
	Name          *string          `json:"name"`
	Type          *ingredient.Type `json:"type"`
	ImageURL      *string          `json:"image_url"`
	Nutrients     *NutrientsDTO    `json:"nutrients"`
	CurrentAmount *float64         `json:"current_amount"`
	ServingSize   *float64         `json:"serving_size"`
	Unit          *ingredient.Unit `json:"unit"`
	OtherUnit     *string          `json:"other_unit"`
}

// AddProductCommand contains data for attaching a retail product
type AddProductCommand struct {
	Retailer string  `json:"retailer" validate:"required"`
	Label    string  `json:"label"`
	Cost     float64 `json:"cost" validate:"min=0"`
	Servings float64 `json:"servings" validate:"min=0"`
	URL      string  `json:"url"`
}

// ProductDTO is the data transfer object for retail products.
// CostPerServing is omitted when the product has zero servings.
type ProductDTO struct {
	ID             uuid.UUID `json:"id"`
	Retailer       string    `json:"retailer"`
	Label          string    `json:"label"`
	Cost           float64   `json:"cost"`
	Servings       float64   `json:"servings"`
	URL            string    `json:"url"`
	CostPerServing *float64  `json:"cost_per_serving,omitempty"`
}

// IngredientDTO is the data transfer object for pantry items
type IngredientDTO struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Type             ingredient.Type `json:"type"`
	ImageURL         string          `json:"image_url"`
	Nutrients        NutrientsDTO    `json:"nutrients"`
	CurrentAmount    float64         `json:"current_amount"`
	ServingSize      float64         `json:"serving_size"`
	Unit             ingredient.Unit `json:"unit"`
	OtherUnit        string          `json:"other_unit,omitempty"`
	Products         []ProductDTO    `json:"products"`
	DefaultProductID *uuid.UUID      `json:"default_product_id,omitempty"`
}
