// Package meal contains the core domain logic for the recipe catalog.
// Meals are referenced by id from meal plans; deleting a meal never
// cascades into the plans that reference it.
package meal

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a meal within the catalog
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnack     Category = "snack"
	CategoryDessert   Category = "dessert"
	CategoryDrink     Category = "drink"
)

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

// Meal represents a recipe in the catalog
type Meal struct {
	id           uuid.UUID
	title        string
	description  string
	category     Category
	prepTime     int // minutes
	cookTime     int // minutes
	servingSize  int
	instructions []string
	imageURL     string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMeal creates a new Meal with validation
func NewMeal(title, description string, category Category, prepTime, cookTime, servingSize int, instructions []string, imageURL string) (*Meal, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if prepTime < 0 || cookTime < 0 {
		return nil, ErrNegativeTime
	}
	if servingSize < 1 {
		return nil, ErrInvalidServingSize
	}

	now := time.Now()
	return &Meal{
		id:           uuid.New(),
		title:        title,
		description:  description,
		category:     category,
		prepTime:     prepTime,
		cookTime:     cookTime,
		servingSize:  servingSize,
		instructions: append([]string(nil), instructions...),
		imageURL:     imageURL,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Restore rebuilds a Meal from persisted state. It bypasses creation
// side effects and is intended for repository mappers and seed data.
func Restore(id uuid.UUID, title, description string, category Category, prepTime, cookTime, servingSize int, instructions []string, imageURL string, createdAt, updatedAt time.Time) *Meal {
	return &Meal{
		id:           id,
		title:        title,
		description:  description,
		category:     category,
		prepTime:     prepTime,
		cookTime:     cookTime,
		servingSize:  servingSize,
		instructions: append([]string(nil), instructions...),
		imageURL:     imageURL,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the meal's unique identifier
func (m *Meal) ID() uuid.UUID {
	return m.id
}

// Title returns the meal's title
func (m *Meal) Title() string {
	return m.title
}

// Description returns the meal's description
func (m *Meal) Description() string {
	return m.description
}

// Category returns the meal's category
func (m *Meal) Category() Category {
	return m.category
}

// PrepTime returns the preparation time in minutes
func (m *Meal) PrepTime() int {
	return m.prepTime
}

// CookTime returns the cooking time in minutes
func (m *Meal) CookTime() int {
	return m.cookTime
}

// ServingSize returns the number of servings
func (m *Meal) ServingSize() int {
	return m.servingSize
}

// Instructions returns the ordered instruction steps
func (m *Meal) Instructions() []string {
	return m.instructions
}

// ImageURL returns the meal's image URL
func (m *Meal) ImageURL() string {
	return m.imageURL
}

// CreatedAt returns when the meal was created
func (m *Meal) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the meal was last updated
func (m *Meal) UpdatedAt() time.Time {
	return m.updatedAt
}

// UpdateTitle updates the meal title with validation
func (m *Meal) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	m.title = title
	m.touch()
	return nil
}

// UpdateDescription updates the meal description
func (m *Meal) UpdateDescription(description string) {
	m.description = description
	m.touch()
}

// UpdateCategory updates the meal category with validation
func (m *Meal) UpdateCategory(category Category) error {
	if !category.Valid() {
		return ErrInvalidCategory
	}
	m.category = category
	m.touch()
	return nil
}

// UpdateTiming updates prep and cook time in minutes
func (m *Meal) UpdateTiming(prepTime, cookTime int) error {
	if prepTime < 0 || cookTime < 0 {
		return ErrNegativeTime
	}
	m.prepTime = prepTime
	m.cookTime = cookTime
	m.touch()
	return nil
}

// UpdateServingSize updates the serving size
func (m *Meal) UpdateServingSize(servingSize int) error {
	if servingSize < 1 {
		return ErrInvalidServingSize
	}
	m.servingSize = servingSize
	m.touch()
	return nil
}

// ReplaceInstructions replaces the full instruction list, preserving order
func (m *Meal) ReplaceInstructions(instructions []string) {
	m.instructions = append([]string(nil), instructions...)
	m.touch()
}

// UpdateImageURL updates the meal image URL
func (m *Meal) UpdateImageURL(imageURL string) {
	m.imageURL = imageURL
	m.touch()
}

// TotalTime returns prep plus cook time in minutes
func (m *Meal) TotalTime() int {
	return m.prepTime + m.cookTime
}

func (m *Meal) touch() {
	m.updatedAt = time.Now()
}

// validateTitle validates meal titles
func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
