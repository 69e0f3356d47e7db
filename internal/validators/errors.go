package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProductCode = errors.New("product code is required")
	ErrEmptyProductName = errors.New("product name is required")
	ErrEmptyMealName    = errors.New("meal name is required")
	ErrInvalidMealID    = errors.New("invalid meal id")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidWeight    = errors.New("weight must be positive")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInvalidRatio     = errors.New("nutrient ratio must be between 0 and 1")
	ErrNegativeBodyData = errors.New("body data cannot be negative")
)
