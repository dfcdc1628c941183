package ingredient

import "errors"

// Domain errors for pantry operations

var (
	ErrNameRequired       = errors.New("ingredient name is required")
	ErrInvalidType        = errors.New("unknown ingredient type")
	ErrInvalidUnit        = errors.New("unknown measurement unit")
	ErrOtherUnitRequired  = errors.New("a custom unit label is required when unit is \"other\"")
	ErrOtherUnitForbidden = errors.New("a custom unit label is only allowed when unit is \"other\"")
	ErrNegativeAmount     = errors.New("amount cannot be negative")

	ErrRetailerRequired = errors.New("product retailer is required")
	ErrNegativeCost     = errors.New("product cost cannot be negative")
	ErrNoServings       = errors.New("product has no servings to price against")
	ErrProductNotFound  = errors.New("product not found on this ingredient")

	ErrIngredientNotFound = errors.New("ingredient not found")
)
