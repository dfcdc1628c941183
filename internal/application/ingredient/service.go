// Package ingredient provides the application layer for the pantry
// inventory
package ingredient

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// IngredientService implements the pantry use cases
type IngredientService struct {
	ingredientRepo outbound.IngredientRepository
	logger         *zap.Logger
}

// NewIngredientService creates a new ingredient service
func NewIngredientService(
	ingredientRepo outbound.IngredientRepository,
	logger *zap.Logger,
) inbound.IngredientService {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		logger:         logger.Named("ingredient-service"),
	}
}

// CreateIngredient adds a new pantry item
func (s *IngredientService) CreateIngredient(ctx context.Context, cmd inbound.CreateIngredientCommand) (*inbound.IngredientDTO, error) {
	entity, err := ingredient.NewIngredient(
		cmd.Name,
		cmd.Type,
		cmd.ImageURL,
		nutrientsFromDTO(cmd.Nutrients),
		cmd.CurrentAmount,
		cmd.ServingSize,
		cmd.Unit,
		cmd.OtherUnit,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.ingredientRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create ingredient", err)
	}

	s.logger.Info("Ingredient created",
		zap.String("ingredient_id", entity.ID().String()),
		zap.String("name", entity.Name()),
	)

	dto := entityToDTO(entity)
	return &dto, nil
}

// UpdateIngredient applies a partial update; nil command fields keep
// their current value
func (s *IngredientService) UpdateIngredient(ctx context.Context, cmd inbound.UpdateIngredientCommand) (*inbound.IngredientDTO, error) {
	entity, err := s.findIngredient(ctx, cmd.IngredientID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := entity.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.Type != nil {
		if err := entity.UpdateType(*cmd.Type); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.ImageURL != nil {
		entity.UpdateImageURL(*cmd.ImageURL)
	}
	if cmd.Nutrients != nil {
		entity.UpdateNutrients(nutrientsFromDTO(*cmd.Nutrients))
	}
	if cmd.CurrentAmount != nil {
		if err := entity.UpdateAmount(*cmd.CurrentAmount); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.ServingSize != nil {
		entity.UpdateServingSize(*cmd.ServingSize)
	}
	if cmd.Unit != nil {
		otherUnit := entity.OtherUnit()
		if cmd.OtherUnit != nil {
			otherUnit = *cmd.OtherUnit
		}
		// Switching away from a custom unit drops the stale label
		// instead of rejecting the update.
		if *cmd.Unit != ingredient.UnitOther && cmd.OtherUnit == nil {
			otherUnit = ""
		}
		if err := entity.UpdateUnit(*cmd.Unit, otherUnit); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}

	if err := s.ingredientRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update ingredient", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// DeleteIngredient removes a pantry item. Deleting an unknown id is a
// no-op.
func (s *IngredientService) DeleteIngredient(ctx context.Context, ingredientID uuid.UUID) error {
	if err := s.ingredientRepo.Delete(ctx, ingredientID); err != nil {
		return errors.NewDatabaseError("delete ingredient", err)
	}
	s.logger.Info("Ingredient deleted", zap.String("ingredient_id", ingredientID.String()))
	return nil
}

// GetIngredientByID returns a single pantry item
func (s *IngredientService) GetIngredientByID(ctx context.Context, ingredientID uuid.UUID) (*inbound.IngredientDTO, error) {
	entity, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	dto := entityToDTO(entity)
	return &dto, nil
}

// ListIngredients returns all pantry items in insertion order
func (s *IngredientService) ListIngredients(ctx context.Context) ([]inbound.IngredientDTO, error) {
	entities, err := s.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	dtos := make([]inbound.IngredientDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, entityToDTO(e))
	}
	return dtos, nil
}

// AddProduct attaches a retail product to an ingredient
func (s *IngredientService) AddProduct(ctx context.Context, ingredientID uuid.UUID, cmd inbound.AddProductCommand) (*inbound.IngredientDTO, error) {
	entity, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	product := ingredient.Product{
		ID:       uuid.New(),
		Retailer: cmd.Retailer,
		Label:    cmd.Label,
		Cost:     cmd.Cost,
		Servings: cmd.Servings,
		URL:      cmd.URL,
	}
	if err := entity.AddProduct(product); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.ingredientRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update ingredient", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// RemoveProduct detaches a product; removing an unknown product id is a
// no-op
func (s *IngredientService) RemoveProduct(ctx context.Context, ingredientID, productID uuid.UUID) error {
	entity, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return err
	}

	entity.RemoveProduct(productID)

	if err := s.ingredientRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update ingredient", err)
	}
	return nil
}

// SetDefaultProduct marks one of the ingredient's products as preferred
func (s *IngredientService) SetDefaultProduct(ctx context.Context, ingredientID, productID uuid.UUID) error {
	entity, err := s.findIngredient(ctx, ingredientID)
	if err != nil {
		return err
	}

	if err := entity.SetDefaultProduct(productID); err != nil {
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.ingredientRepo.Update(ctx, entity); err != nil {
		return errors.NewDatabaseError("update ingredient", err)
	}
	return nil
}

func (s *IngredientService) findIngredient(ctx context.Context, id uuid.UUID) (*ingredient.Ingredient, error) {
	entity, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("find ingredient", err)
	}
	if entity == nil {
		return nil, errors.NewIngredientNotFoundError(id.String())
	}
	return entity, nil
}

func nutrientsFromDTO(n inbound.NutrientsDTO) ingredient.NutrientProfile {
	return ingredient.NutrientProfile{
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
		Fiber:    n.Fiber,
		Sugar:    n.Sugar,
		Sodium:   n.Sodium,
		Calories: n.Calories,
	}
}

func nutrientsToDTO(n ingredient.NutrientProfile) inbound.NutrientsDTO {
	return inbound.NutrientsDTO{
		Protein:  n.Protein,
		Carbs:    n.Carbs,
		Fat:      n.Fat,
		Fiber:    n.Fiber,
		Sugar:    n.Sugar,
		Sodium:   n.Sodium,
		Calories: n.Calories,
	}
}

func entityToDTO(i *ingredient.Ingredient) inbound.IngredientDTO {
	products := make([]inbound.ProductDTO, 0, len(i.Products()))
	for _, p := range i.Products() {
		dto := inbound.ProductDTO{
			ID:       p.ID,
			Retailer: p.Retailer,
			Label:    p.Label,
			Cost:     p.Cost,
			Servings: p.Servings,
			URL:      p.URL,
		}
		if cps, err := p.CostPerServing(); err == nil {
			dto.CostPerServing = &cps
		}
		products = append(products, dto)
	}

	return inbound.IngredientDTO{
		ID:               i.ID(),
		Name:             i.Name(),
		Type:             i.Type(),
		ImageURL:         i.ImageURL(),
		Nutrients:        nutrientsToDTO(i.Nutrients()),
		CurrentAmount:    i.CurrentAmount(),
		ServingSize:      i.ServingSize(),
		Unit:             i.Unit(),
		OtherUnit:        i.OtherUnit(),
		Products:         products,
		DefaultProductID: i.DefaultProductID(),
	}
}
