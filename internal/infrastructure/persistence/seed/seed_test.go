package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novamoonx/demmi/internal/infrastructure/persistence/memory"
	"github.com/novamoonx/demmi/internal/infrastructure/persistence/seed"
)

func TestDemo(t *testing.T) {
	ctx := context.Background()
	meals := memory.NewMealRepository()
	plans := memory.NewMealPlanRepository()
	ingredients := memory.NewIngredientRepository()
	conversations := memory.NewConversationRepository()

	require.NoError(t, seed.Demo(ctx, meals, plans, ingredients, conversations))

	allMeals, err := meals.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allMeals, 8)

	allPlans, err := plans.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allPlans, 6)
	// Every seeded plan points at a seeded meal.
	for _, p := range allPlans {
		m, err := meals.FindByID(ctx, p.MealID())
		require.NoError(t, err)
		assert.NotNil(t, m)
	}

	allIngredients, err := ingredients.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, allIngredients, 6)

	allConversations, err := conversations.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, allConversations, 4)
	assert.True(t, allConversations[0].Pinned())
}
