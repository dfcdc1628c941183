package meal

import "errors"

// Domain errors for catalog operations

var (
	ErrTitleRequired      = errors.New("meal title is required")
	ErrTitleTooLong       = errors.New("meal title must not exceed 200 characters")
	ErrInvalidCategory    = errors.New("unknown meal category")
	ErrNegativeTime       = errors.New("prep and cook time cannot be negative")
	ErrInvalidServingSize = errors.New("serving size must be at least 1")

	ErrMealNotFound = errors.New("meal not found")
)
