package mealplan

import "errors"

// Domain errors for meal-plan operations

var (
	ErrNoMealSelected   = errors.New("a meal selection is required")
	ErrInvalidMealType  = errors.New("unknown meal type")
	ErrInvalidTimeOfDay = errors.New("time of day must be in HH:MM format")
	ErrInvalidView      = errors.New("unknown calendar view")

	ErrPlanNotFound = errors.New("meal plan not found")
)
