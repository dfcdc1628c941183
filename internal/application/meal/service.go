// Package meal provides the application layer for the recipe catalog
// This implements the use cases defined in the inbound ports
package meal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

const listCacheKey = "meals:all"

// MealService implements the catalog use cases
type MealService struct {
	mealRepo outbound.MealRepository
	cache    outbound.CacheRepository
	logger   *zap.Logger
}

// NewMealService creates a new meal service
func NewMealService(
	mealRepo outbound.MealRepository,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) inbound.MealService {
	return &MealService{
		mealRepo: mealRepo,
		cache:    cache,
		logger:   logger.Named("meal-service"),
	}
}

// CreateMeal adds a new entry to the catalog
func (s *MealService) CreateMeal(ctx context.Context, cmd inbound.CreateMealCommand) (*inbound.MealDTO, error) {
	s.logger.Info("Creating meal",
		zap.String("title", cmd.Title),
		zap.String("category", string(cmd.Category)),
	)

	entity, err := meal.NewMeal(cmd.Title, cmd.Description, cmd.Category, cmd.PrepTime, cmd.CookTime, cmd.ServingSize, cmd.Instructions, cmd.ImageURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.mealRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create meal", err)
	}

	s.invalidateListCache(ctx)

	dto := entityToDTO(entity)
	return &dto, nil
}

// UpdateMeal applies a partial update to an existing entry. Fields left
// nil in the command keep their current value.
func (s *MealService) UpdateMeal(ctx context.Context, cmd inbound.UpdateMealCommand) (*inbound.MealDTO, error) {
	entity, err := s.mealRepo.FindByID(ctx, cmd.MealID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal", err)
	}
	if entity == nil {
		return nil, errors.NewMealNotFoundError(cmd.MealID.String())
	}

	if cmd.Title != nil {
		if err := entity.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.Description != nil {
		entity.UpdateDescription(*cmd.Description)
	}
	if cmd.Category != nil {
		if err := entity.UpdateCategory(*cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.PrepTime != nil || cmd.CookTime != nil {
		prep, cook := entity.PrepTime(), entity.CookTime()
		if cmd.PrepTime != nil {
			prep = *cmd.PrepTime
		}
		if cmd.CookTime != nil {
			cook = *cmd.CookTime
		}
		if err := entity.UpdateTiming(prep, cook); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.ServingSize != nil {
		if err := entity.UpdateServingSize(*cmd.ServingSize); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.Instructions != nil {
		entity.ReplaceInstructions(*cmd.Instructions)
	}
	if cmd.ImageURL != nil {
		entity.UpdateImageURL(*cmd.ImageURL)
	}

	if err := s.mealRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update meal", err)
	}

	s.invalidateListCache(ctx)

	dto := entityToDTO(entity)
	return &dto, nil
}

// DeleteMeal removes an entry from the catalog. Deleting an unknown id
// is a no-op; plans referencing the meal keep their reference.
func (s *MealService) DeleteMeal(ctx context.Context, mealID uuid.UUID) error {
	if err := s.mealRepo.Delete(ctx, mealID); err != nil {
		return errors.NewDatabaseError("delete meal", err)
	}

	s.invalidateListCache(ctx)

	s.logger.Info("Meal deleted", zap.String("meal_id", mealID.String()))
	return nil
}

// GetMealByID returns a single catalog entry
func (s *MealService) GetMealByID(ctx context.Context, mealID uuid.UUID) (*inbound.MealDTO, error) {
	entity, err := s.mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal", err)
	}
	if entity == nil {
		return nil, errors.NewMealNotFoundError(mealID.String())
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// ListMeals returns catalog entries in insertion order, optionally
// filtered by category
func (s *MealService) ListMeals(ctx context.Context, category *meal.Category) ([]inbound.MealDTO, error) {
	if category != nil {
		entities, err := s.mealRepo.FindByCategory(ctx, *category)
		if err != nil {
			return nil, errors.NewDatabaseError("list meals by category", err)
		}
		return entitiesToDTOs(entities), nil
	}

	if cached, err := s.cache.Get(ctx, listCacheKey); err == nil && cached != nil {
		var dtos []inbound.MealDTO
		if err := json.Unmarshal(cached, &dtos); err == nil {
			return dtos, nil
		}
	}

	entities, err := s.mealRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list meals", err)
	}

	dtos := entitiesToDTOs(entities)
	if payload, err := json.Marshal(dtos); err == nil {
		if err := s.cache.Set(ctx, listCacheKey, payload, time.Minute); err != nil {
			s.logger.Warn("Failed to cache meal list", zap.Error(err))
		}
	}
	return dtos, nil
}

func (s *MealService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate meal list cache", zap.Error(err))
	}
}

func entityToDTO(m *meal.Meal) inbound.MealDTO {
	return inbound.MealDTO{
		ID:           m.ID(),
		Title:        m.Title(),
		Description:  m.Description(),
		Category:     m.Category(),
		PrepTime:     m.PrepTime(),
		CookTime:     m.CookTime(),
		TotalTime:    m.TotalTime(),
		ServingSize:  m.ServingSize(),
		Instructions: m.Instructions(),
		ImageURL:     m.ImageURL(),
		CreatedAt:    m.CreatedAt().Format(time.RFC3339),
		UpdatedAt:    m.UpdatedAt().Format(time.RFC3339),
	}
}

func entitiesToDTOs(entities []*meal.Meal) []inbound.MealDTO {
	dtos := make([]inbound.MealDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, entityToDTO(e))
	}
	return dtos
}
