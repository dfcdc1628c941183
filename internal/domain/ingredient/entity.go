// Package ingredient contains the domain logic for the pantry
// inventory: ingredients, their nutrient profiles and the retail
// products they can be bought as.
package ingredient

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies an ingredient
type Type string

const (
	TypeMeat    Type = "meat"
	TypeProduce Type = "produce"
	TypeDairy   Type = "dairy"
	TypeGrains  Type = "grains"
	TypeLegumes Type = "legumes"
	TypeOils    Type = "oils"
	TypeSpices  Type = "spices"
	TypeNuts    Type = "nuts"
	TypeSeafood Type = "seafood"
	TypeOther   Type = "other"
)

// Valid reports whether the type is one of the known values
func (t Type) Valid() bool {
	switch t {
	case TypeMeat, TypeProduce, TypeDairy, TypeGrains, TypeLegumes,
		TypeOils, TypeSpices, TypeNuts, TypeSeafood, TypeOther:
		return true
	}
	return false
}

// Unit is the measurement unit an ingredient amount is tracked in
type Unit string

const (
	UnitPound     Unit = "lb"
	UnitOunce     Unit = "oz"
	UnitKilogram  Unit = "kg"
	UnitGram      Unit = "g"
	UnitCup       Unit = "cup"
	UnitTbsp      Unit = "tbsp"
	UnitTsp       Unit = "tsp"
	UnitPiece     Unit = "piece"
	UnitCan       Unit = "can"
	UnitBag       Unit = "bag"
	UnitBottle    Unit = "bottle"
	UnitBox       Unit = "box"
	UnitJar       Unit = "jar"
	UnitPack      Unit = "pack"
	UnitSlice     Unit = "slice"
	UnitJug       Unit = "jug"
	UnitBunch     Unit = "bunch"
	UnitContainer Unit = "container"
	UnitCarton    Unit = "carton"
	UnitGallon    Unit = "gallon"
	UnitOther     Unit = "other"
)

// Valid reports whether the unit is one of the known values
func (u Unit) Valid() bool {
	switch u {
	case UnitPound, UnitOunce, UnitKilogram, UnitGram, UnitCup, UnitTbsp,
		UnitTsp, UnitPiece, UnitCan, UnitBag, UnitBottle, UnitBox, UnitJar,
		UnitPack, UnitSlice, UnitJug, UnitBunch, UnitContainer, UnitCarton,
		UnitGallon, UnitOther:
		return true
	}
	return false
}

// NutrientProfile holds macros per 100g/100ml plus calories
type NutrientProfile struct {
	Protein  float64 // grams
	Carbs    float64 // grams
	Fat      float64 // grams
	Fiber    float64 // grams
	Sugar    float64 // grams
	Sodium   float64 // milligrams
	Calories float64 // kcal
}

// Product is a retail offering of an ingredient
type Product struct {
	ID       uuid.UUID
	Retailer string
	Label    string
	Cost     float64
	Servings float64
	URL      string
}

// Validate validates the product
func (p Product) Validate() error {
	if p.Retailer == "" {
		return ErrRetailerRequired
	}
	if p.Cost < 0 {
		return ErrNegativeCost
	}
	return nil
}

// CostPerServing derives cost divided by servings. Products with zero
// servings carry no meaningful per-serving price, so the division is
// guarded rather than left to produce +Inf.
func (p Product) CostPerServing() (float64, error) {
	if p.Servings == 0 {
		return 0, ErrNoServings
	}
	return p.Cost / p.Servings, nil
}

// Ingredient represents one pantry item
type Ingredient struct {
	id               uuid.UUID
	name             string
	ingredientType   Type
	imageURL         string
	nutrients        NutrientProfile
	currentAmount    float64
	servingSize      float64
	unit             Unit
	otherUnit        string // present iff unit == other
	products         []Product
	defaultProductID *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// NewIngredient creates a new Ingredient with validation
func NewIngredient(name string, ingredientType Type, imageURL string, nutrients NutrientProfile, currentAmount, servingSize float64, unit Unit, otherUnit string) (*Ingredient, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !ingredientType.Valid() {
		return nil, ErrInvalidType
	}
	if !unit.Valid() {
		return nil, ErrInvalidUnit
	}
	if err := validateOtherUnit(unit, otherUnit); err != nil {
		return nil, err
	}
	if currentAmount < 0 {
		return nil, ErrNegativeAmount
	}

	now := time.Now()
	return &Ingredient{
		id:             uuid.New(),
		name:           name,
		ingredientType: ingredientType,
		imageURL:       imageURL,
		nutrients:      nutrients,
		currentAmount:  currentAmount,
		servingSize:    servingSize,
		unit:           unit,
		otherUnit:      otherUnit,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Restore rebuilds an Ingredient from persisted state for repository
// mappers and seed data.
func Restore(id uuid.UUID, name string, ingredientType Type, imageURL string, nutrients NutrientProfile, currentAmount, servingSize float64, unit Unit, otherUnit string, products []Product, defaultProductID *uuid.UUID, createdAt, updatedAt time.Time) *Ingredient {
	return &Ingredient{
		id:               id,
		name:             name,
		ingredientType:   ingredientType,
		imageURL:         imageURL,
		nutrients:        nutrients,
		currentAmount:    currentAmount,
		servingSize:      servingSize,
		unit:             unit,
		otherUnit:        otherUnit,
		products:         append([]Product(nil), products...),
		defaultProductID: defaultProductID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ID returns the ingredient's unique identifier
func (i *Ingredient) ID() uuid.UUID { return i.id }

// Name returns the ingredient's name
func (i *Ingredient) Name() string { return i.name }

// Type returns the ingredient's type
func (i *Ingredient) Type() Type { return i.ingredientType }

// ImageURL returns the ingredient's image URL
func (i *Ingredient) ImageURL() string { return i.imageURL }

// Nutrients returns the nutrient profile
func (i *Ingredient) Nutrients() NutrientProfile { return i.nutrients }

// CurrentAmount returns the amount on hand, in the tracked unit
func (i *Ingredient) CurrentAmount() float64 { return i.currentAmount }

// ServingSize returns the serving size, in the tracked unit
func (i *Ingredient) ServingSize() float64 { return i.servingSize }

// Unit returns the measurement unit
func (i *Ingredient) Unit() Unit { return i.unit }

// OtherUnit returns the custom unit label, set only when Unit is "other"
func (i *Ingredient) OtherUnit() string { return i.otherUnit }

// Products returns the ordered retail products
func (i *Ingredient) Products() []Product { return i.products }

// DefaultProductID returns the preferred product, if any
func (i *Ingredient) DefaultProductID() *uuid.UUID { return i.defaultProductID }

// CreatedAt returns when the ingredient was created
func (i *Ingredient) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns when the ingredient was last updated
func (i *Ingredient) UpdatedAt() time.Time { return i.updatedAt }

// Rename updates the ingredient's name
func (i *Ingredient) Rename(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	i.name = name
	i.touch()
	return nil
}

// UpdateType updates the ingredient type
func (i *Ingredient) UpdateType(t Type) error {
	if !t.Valid() {
		return ErrInvalidType
	}
	i.ingredientType = t
	i.touch()
	return nil
}

// UpdateImageURL updates the image URL
func (i *Ingredient) UpdateImageURL(imageURL string) {
	i.imageURL = imageURL
	i.touch()
}

// UpdateNutrients replaces the nutrient profile
func (i *Ingredient) UpdateNutrients(n NutrientProfile) {
	i.nutrients = n
	i.touch()
}

// UpdateAmount sets the amount on hand
func (i *Ingredient) UpdateAmount(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	i.currentAmount = amount
	i.touch()
	return nil
}

// UpdateServingSize sets the serving size
func (i *Ingredient) UpdateServingSize(servingSize float64) {
	i.servingSize = servingSize
	i.touch()
}

// UpdateUnit changes the measurement unit. The custom label is
// required exactly when switching to "other" and cleared otherwise.
func (i *Ingredient) UpdateUnit(unit Unit, otherUnit string) error {
	if !unit.Valid() {
		return ErrInvalidUnit
	}
	if err := validateOtherUnit(unit, otherUnit); err != nil {
		return err
	}
	i.unit = unit
	i.otherUnit = otherUnit
	i.touch()
	return nil
}

// AddProduct appends a retail product
func (i *Ingredient) AddProduct(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	i.products = append(i.products, p)
	i.touch()
	return nil
}

// RemoveProduct removes a product by id; removing an unknown id is a
// no-op. The default selection is cleared if it pointed at the removed
// product.
func (i *Ingredient) RemoveProduct(productID uuid.UUID) {
	for idx, p := range i.products {
		if p.ID == productID {
			i.products = append(i.products[:idx], i.products[idx+1:]...)
			if i.defaultProductID != nil && *i.defaultProductID == productID {
				i.defaultProductID = nil
			}
			i.touch()
			return
		}
	}
}

// SetDefaultProduct marks one of the ingredient's products as preferred
func (i *Ingredient) SetDefaultProduct(productID uuid.UUID) error {
	for _, p := range i.products {
		if p.ID == productID {
			id := productID
			i.defaultProductID = &id
			i.touch()
			return nil
		}
	}
	return ErrProductNotFound
}

// DefaultProduct returns the preferred product, if set and still present
func (i *Ingredient) DefaultProduct() (Product, bool) {
	if i.defaultProductID == nil {
		return Product{}, false
	}
	for _, p := range i.products {
		if p.ID == *i.defaultProductID {
			return p, true
		}
	}
	return Product{}, false
}

func (i *Ingredient) touch() {
	i.updatedAt = time.Now()
}

func validateOtherUnit(unit Unit, otherUnit string) error {
	if unit == UnitOther && otherUnit == "" {
		return ErrOtherUnitRequired
	}
	if unit != UnitOther && otherUnit != "" {
		return ErrOtherUnitForbidden
	}
	return nil
}
