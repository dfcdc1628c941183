package ingredient

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngredient(t *testing.T) *Ingredient {
	t.Helper()
	i, err := NewIngredient(
		"Chicken Breast", TypeMeat, "",
		NutrientProfile{Protein: 31, Fat: 3.6, Sodium: 74, Calories: 165},
		2.5, 0.25, UnitPound, "",
	)
	require.NoError(t, err)
	return i
}

func TestNewIngredient(t *testing.T) {
	i := newTestIngredient(t)

	assert.NotEqual(t, uuid.Nil, i.ID())
	assert.Equal(t, "Chicken Breast", i.Name())
	assert.Equal(t, TypeMeat, i.Type())
	assert.Equal(t, UnitPound, i.Unit())
	assert.Empty(t, i.Products())
	assert.Nil(t, i.DefaultProductID())
}

func TestNewIngredient_Validation(t *testing.T) {
	nutrients := NutrientProfile{}

	_, err := NewIngredient("", TypeMeat, "", nutrients, 1, 1, UnitPound, "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewIngredient("Salt", Type("mineral"), "", nutrients, 1, 1, UnitPound, "")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = NewIngredient("Salt", TypeSpices, "", nutrients, 1, 1, Unit("handful"), "")
	assert.ErrorIs(t, err, ErrInvalidUnit)

	_, err = NewIngredient("Salt", TypeSpices, "", nutrients, -1, 1, UnitGram, "")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestNewIngredient_OtherUnitRules(t *testing.T) {
	nutrients := NutrientProfile{}

	// "other" requires a custom label.
	_, err := NewIngredient("Starter", TypeOther, "", nutrients, 1, 1, UnitOther, "")
	assert.ErrorIs(t, err, ErrOtherUnitRequired)

	i, err := NewIngredient("Starter", TypeOther, "", nutrients, 1, 1, UnitOther, "crock")
	require.NoError(t, err)
	assert.Equal(t, "crock", i.OtherUnit())

	// A custom label is forbidden for standard units.
	_, err = NewIngredient("Salt", TypeSpices, "", nutrients, 1, 1, UnitGram, "pinch")
	assert.ErrorIs(t, err, ErrOtherUnitForbidden)
}

func TestUpdateUnit_ClearsStaleCustomLabel(t *testing.T) {
	i, err := NewIngredient("Starter", TypeOther, "", NutrientProfile{}, 1, 1, UnitOther, "crock")
	require.NoError(t, err)

	require.NoError(t, i.UpdateUnit(UnitJar, ""))
	assert.Equal(t, UnitJar, i.Unit())
	assert.Empty(t, i.OtherUnit())
}

func TestProductValidate(t *testing.T) {
	p := Product{ID: uuid.New(), Retailer: "FreshMart", Cost: 11.98, Servings: 8}
	assert.NoError(t, p.Validate())

	assert.ErrorIs(t, Product{ID: uuid.New(), Cost: 1}.Validate(), ErrRetailerRequired)
	assert.ErrorIs(t, Product{ID: uuid.New(), Retailer: "X", Cost: -1}.Validate(), ErrNegativeCost)
}

func TestCostPerServing(t *testing.T) {
	p := Product{ID: uuid.New(), Retailer: "FreshMart", Cost: 12, Servings: 8}

	cps, err := p.CostPerServing()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, cps, 1e-9)
}

func TestCostPerServing_ZeroServings(t *testing.T) {
	p := Product{ID: uuid.New(), Retailer: "FreshMart", Cost: 12, Servings: 0}

	_, err := p.CostPerServing()
	assert.ErrorIs(t, err, ErrNoServings)
}

func TestAddAndRemoveProduct(t *testing.T) {
	i := newTestIngredient(t)
	p := Product{ID: uuid.New(), Retailer: "FreshMart", Cost: 11.98, Servings: 8}

	require.NoError(t, i.AddProduct(p))
	require.Len(t, i.Products(), 1)

	// Removing an unknown product id is a no-op.
	i.RemoveProduct(uuid.New())
	assert.Len(t, i.Products(), 1)

	i.RemoveProduct(p.ID)
	assert.Empty(t, i.Products())
}

func TestRemoveProduct_ClearsDefaultSelection(t *testing.T) {
	i := newTestIngredient(t)
	p := Product{ID: uuid.New(), Retailer: "FreshMart", Cost: 11.98, Servings: 8}
	require.NoError(t, i.AddProduct(p))
	require.NoError(t, i.SetDefaultProduct(p.ID))

	i.RemoveProduct(p.ID)

	assert.Nil(t, i.DefaultProductID())
	_, ok := i.DefaultProduct()
	assert.False(t, ok)
}

func TestSetDefaultProduct(t *testing.T) {
	i := newTestIngredient(t)
	p := Product{ID: uuid.New(), Retailer: "ValueGrocer", Cost: 19.96, Servings: 16}
	require.NoError(t, i.AddProduct(p))

	require.NoError(t, i.SetDefaultProduct(p.ID))
	got, ok := i.DefaultProduct()
	require.True(t, ok)
	assert.Equal(t, p.ID, got.ID)

	assert.ErrorIs(t, i.SetDefaultProduct(uuid.New()), ErrProductNotFound)
}
