package ingredient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/ingredient"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

func newFixture(t *testing.T) inbound.IngredientService {
	t.Helper()
	return NewIngredientService(memory.NewIngredientRepository(), zap.NewNop())
}

func chickenCommand() inbound.CreateIngredientCommand {
	return inbound.CreateIngredientCommand{
		Name:          "Chicken Breast",
		Type:          ingredient.TypeMeat,
		Nutrients:     inbound.NutrientsDTO{Protein: 31, Fat: 3.6, Calories: 165},
		CurrentAmount: 2,
		ServingSize:   0.5,
		Unit:          ingredient.UnitPound,
	}
}

func TestCreateIngredient(t *testing.T) {
	svc := newFixture(t)

	dto, err := svc.CreateIngredient(context.Background(), chickenCommand())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dto.ID)
	assert.Equal(t, "Chicken Breast", dto.Name)
	assert.Equal(t, ingredient.TypeMeat, dto.Type)
	assert.Equal(t, 31.0, dto.Nutrients.Protein)
	assert.Empty(t, dto.Products)
	assert.Nil(t, dto.DefaultProductID)
}

func TestCreateIngredient_OtherUnitRequiresLabel(t *testing.T) {
	svc := newFixture(t)

	cmd := chickenCommand()
	cmd.Unit = ingredient.UnitOther
	cmd.OtherUnit = ""

	_, err := svc.CreateIngredient(context.Background(), cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestUpdateIngredient_PartialMerge(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	amount := 5.0
	updated, err := svc.UpdateIngredient(ctx, inbound.UpdateIngredientCommand{
		IngredientID:  created.ID,
		CurrentAmount: &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.CurrentAmount)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Unit, updated.Unit)
}

func TestUpdateIngredient_SwitchToOtherUnit(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	unit := ingredient.UnitOther
	label := "crock"
	updated, err := svc.UpdateIngredient(ctx, inbound.UpdateIngredientCommand{
		IngredientID: created.ID,
		Unit:         &unit,
		OtherUnit:    &label,
	})

	require.NoError(t, err)
	assert.Equal(t, ingredient.UnitOther, updated.Unit)
	assert.Equal(t, "crock", updated.OtherUnit)

	// Switching back to a standard unit clears the custom label.
	standard := ingredient.UnitGram
	updated, err = svc.UpdateIngredient(ctx, inbound.UpdateIngredientCommand{
		IngredientID: created.ID,
		Unit:         &standard,
	})

	require.NoError(t, err)
	assert.Equal(t, ingredient.UnitGram, updated.Unit)
	assert.Empty(t, updated.OtherUnit)
}

func TestUpdateIngredient_UnknownID(t *testing.T) {
	svc := newFixture(t)

	name := "Anything"
	_, err := svc.UpdateIngredient(context.Background(), inbound.UpdateIngredientCommand{
		IngredientID: uuid.New(),
		Name:         &name,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeIngredientNotFound))
}

func TestDeleteIngredient_UnknownIDIsNoOp(t *testing.T) {
	svc := newFixture(t)

	assert.NoError(t, svc.DeleteIngredient(context.Background(), uuid.New()))
}

func TestAddProduct_CostPerServing(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	dto, err := svc.AddProduct(ctx, created.ID, inbound.AddProductCommand{
		Retailer: "Costco",
		Label:    "Organic Chicken Breast 6lb",
		Cost:     24.99,
		Servings: 12,
	})

	require.NoError(t, err)
	require.Len(t, dto.Products, 1)
	product := dto.Products[0]
	assert.Equal(t, "Costco", product.Retailer)
	require.NotNil(t, product.CostPerServing)
	assert.InDelta(t, 24.99/12, *product.CostPerServing, 1e-9)
}

func TestAddProduct_ZeroServingsOmitsCostPerServing(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	dto, err := svc.AddProduct(ctx, created.ID, inbound.AddProductCommand{
		Retailer: "Local Market",
		Cost:     7.50,
		Servings: 0,
	})

	require.NoError(t, err)
	require.Len(t, dto.Products, 1)
	assert.Nil(t, dto.Products[0].CostPerServing)
}

func TestSetDefaultProduct(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	dto, err := svc.AddProduct(ctx, created.ID, inbound.AddProductCommand{
		Retailer: "Costco",
		Cost:     24.99,
		Servings: 12,
	})
	require.NoError(t, err)
	productID := dto.Products[0].ID

	require.NoError(t, svc.SetDefaultProduct(ctx, created.ID, productID))

	fetched, err := svc.GetIngredientByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.DefaultProductID)
	assert.Equal(t, productID, *fetched.DefaultProductID)
}

func TestSetDefaultProduct_UnknownProduct(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	err = svc.SetDefaultProduct(ctx, created.ID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidationFailed))
}

func TestRemoveProduct_ClearsDefaultAndUnknownIsNoOp(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	created, err := svc.CreateIngredient(ctx, chickenCommand())
	require.NoError(t, err)

	dto, err := svc.AddProduct(ctx, created.ID, inbound.AddProductCommand{
		Retailer: "Costco",
		Cost:     24.99,
		Servings: 12,
	})
	require.NoError(t, err)
	productID := dto.Products[0].ID
	require.NoError(t, svc.SetDefaultProduct(ctx, created.ID, productID))

	// Unknown product id is a no-op.
	require.NoError(t, svc.RemoveProduct(ctx, created.ID, uuid.New()))

	require.NoError(t, svc.RemoveProduct(ctx, created.ID, productID))

	fetched, err := svc.GetIngredientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Products)
	assert.Nil(t, fetched.DefaultProductID)
}

func TestListIngredients_InsertionOrder(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	names := []string{"Chicken Breast", "White Rice", "Olive Oil"}
	for _, name := range names {
		cmd := chickenCommand()
		cmd.Name = name
		_, err := svc.CreateIngredient(ctx, cmd)
		require.NoError(t, err)
	}

	list, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}
