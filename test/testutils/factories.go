// Package testutils provides test data factories for consistent test
// data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/domain/meal"
	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/domain/user"
)

// MealBuilder provides a fluent interface for building test meals
type MealBuilder struct {
	title        string
	description  string
	category     meal.Category
	prepTime     int
	cookTime     int
	servingSize  int
	instructions []string
	imageURL     string
}

// NewMealBuilder creates a new meal builder with faked defaults
func NewMealBuilder() *MealBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &MealBuilder{
		title:       faker.Dinner(),
		description: faker.Sentence(8),
		category:    meal.CategoryDinner,
		prepTime:    faker.Number(5, 30),
		cookTime:    faker.Number(10, 60),
		servingSize: faker.Number(1, 8),
		instructions: []string{
			faker.Sentence(6),
			faker.Sentence(6),
			faker.Sentence(6),
		},
		imageURL: faker.URL(),
	}
}

// WithTitle sets the meal title
func (b *MealBuilder) WithTitle(title string) *MealBuilder {
	b.title = title
	return b
}

// WithCategory sets the meal category
func (b *MealBuilder) WithCategory(category meal.Category) *MealBuilder {
	b.category = category
	return b
}

// WithTimes sets prep and cook time in minutes
func (b *MealBuilder) WithTimes(prep, cook int) *MealBuilder {
	b.prepTime = prep
	b.cookTime = cook
	return b
}

// WithServingSize sets the serving size
func (b *MealBuilder) WithServingSize(servings int) *MealBuilder {
	b.servingSize = servings
	return b
}

// WithInstructions sets the instruction list
func (b *MealBuilder) WithInstructions(instructions ...string) *MealBuilder {
	b.instructions = instructions
	return b
}

// Build creates the meal
func (b *MealBuilder) Build() (*meal.Meal, error) {
	return meal.NewMeal(b.title, b.description, b.category, b.prepTime, b.cookTime, b.servingSize, b.instructions, b.imageURL)
}

// MustBuild creates the meal and panics on error
func (b *MealBuilder) MustBuild() *meal.Meal {
	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build meal: %v", err))
	}
	return m
}

// IngredientBuilder provides a fluent interface for building test
// pantry items
type IngredientBuilder struct {
	name           string
	ingredientType ingredient.Type
	imageURL       string
	nutrients      ingredient.NutrientProfile
	currentAmount  float64
	servingSize    float64
	unit           ingredient.Unit
	otherUnit      string
}

// NewIngredientBuilder creates a new ingredient builder with faked
// defaults
func NewIngredientBuilder() *IngredientBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &IngredientBuilder{
		name:           faker.Fruit(),
		ingredientType: ingredient.TypeProduce,
		imageURL:       faker.URL(),
		nutrients: ingredient.NutrientProfile{
			Protein:  faker.Float64Range(0, 30),
			Carbs:    faker.Float64Range(0, 50),
			Fat:      faker.Float64Range(0, 20),
			Fiber:    faker.Float64Range(0, 10),
			Sugar:    faker.Float64Range(0, 15),
			Sodium:   faker.Float64Range(0, 500),
			Calories: faker.Float64Range(20, 600),
		},
		currentAmount: faker.Float64Range(0.5, 10),
		servingSize:   1,
		unit:          ingredient.UnitPiece,
	}
}

// WithName sets the ingredient name
func (b *IngredientBuilder) WithName(name string) *IngredientBuilder {
	b.name = name
	return b
}

// WithType sets the ingredient type
func (b *IngredientBuilder) WithType(t ingredient.Type) *IngredientBuilder {
	b.ingredientType = t
	return b
}

// WithUnit sets the unit; pass a label for the free-form unit
func (b *IngredientBuilder) WithUnit(unit ingredient.Unit, otherUnit string) *IngredientBuilder {
	b.unit = unit
	b.otherUnit = otherUnit
	return b
}

// WithAmount sets the current amount and serving size
func (b *IngredientBuilder) WithAmount(current, serving float64) *IngredientBuilder {
	b.currentAmount = current
	b.servingSize = serving
	return b
}

// Build creates the ingredient
func (b *IngredientBuilder) Build() (*ingredient.Ingredient, error) {
	return ingredient.NewIngredient(b.name, b.ingredientType, b.imageURL, b.nutrients, b.currentAmount, b.servingSize, b.unit, b.otherUnit)
}

// MustBuild creates the ingredient and panics on error
func (b *IngredientBuilder) MustBuild() *ingredient.Ingredient {
	i, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build ingredient: %v", err))
	}
	return i
}

// PlanBuilder provides a fluent interface for building test plans
type PlanBuilder struct {
	date      time.Time
	mealType  mealplan.MealType
	mealID    uuid.UUID
	timeOfDay string
	notes     string
}

// NewPlanBuilder creates a new plan builder anchored to today
func NewPlanBuilder(mealID uuid.UUID) *PlanBuilder {
	return &PlanBuilder{
		date:     time.Now(),
		mealType: mealplan.MealTypeDinner,
		mealID:   mealID,
	}
}

// OnDate sets the plan date
func (b *PlanBuilder) OnDate(date time.Time) *PlanBuilder {
	b.date = date
	return b
}

// WithMealType sets the meal slot
func (b *PlanBuilder) WithMealType(t mealplan.MealType) *PlanBuilder {
	b.mealType = t
	return b
}

// At sets the display time (HH:MM)
func (b *PlanBuilder) At(timeOfDay string) *PlanBuilder {
	b.timeOfDay = timeOfDay
	return b
}

// WithNotes sets the plan notes
func (b *PlanBuilder) WithNotes(notes string) *PlanBuilder {
	b.notes = notes
	return b
}

// Build creates the plan
func (b *PlanBuilder) Build() (*mealplan.MealPlan, error) {
	return mealplan.NewMealPlan(b.date, b.mealType, b.mealID, b.timeOfDay, b.notes)
}

// MustBuild creates the plan and panics on error
func (b *PlanBuilder) MustBuild() *mealplan.MealPlan {
	p, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build plan: %v", err))
	}
	return p
}

// UserFactory creates test accounts with deterministic fake data
type UserFactory struct {
	faker *gofakeit.Faker
}

// NewUserFactory creates a new user factory with a seeded faker
func NewUserFactory(seed int64) *UserFactory {
	return &UserFactory{faker: gofakeit.New(seed)}
}

// Email returns a fresh fake email address
func (f *UserFactory) Email() string {
	return f.faker.Email()
}

// Password returns a password that satisfies the sign-up rules
func (f *UserFactory) Password() string {
	return f.faker.Password(true, true, true, false, false, 12)
}

// Build creates a password account with the given hash
func (f *UserFactory) Build(passwordHash string) (*user.User, error) {
	return user.NewUser(f.faker.Email(), passwordHash)
}
