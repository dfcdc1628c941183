package meal

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeal(t *testing.T) {
	m, err := NewMeal(
		"Classic Pancakes",
		"Fluffy weekend breakfast",
		CategoryBreakfast,
		10, 15, 4,
		[]string{"Mix dry ingredients", "Add wet ingredients", "Cook on griddle"},
		"https://example.com/pancakes.jpg",
	)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, m.ID())
	assert.Equal(t, "Classic Pancakes", m.Title())
	assert.Equal(t, CategoryBreakfast, m.Category())
	assert.Equal(t, 25, m.TotalTime())
	assert.Len(t, m.Instructions(), 3)
	assert.False(t, m.CreatedAt().IsZero())
}

func TestNewMeal_Validation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		category    Category
		prepTime    int
		cookTime    int
		servingSize int
		wantErr     error
	}{
		{"empty title", "", CategoryLunch, 5, 5, 2, ErrTitleRequired},
		{"title too long", strings.Repeat("x", 201), CategoryLunch, 5, 5, 2, ErrTitleTooLong},
		{"unknown category", "Soup", Category("brunch"), 5, 5, 2, ErrInvalidCategory},
		{"negative prep time", "Soup", CategoryLunch, -1, 5, 2, ErrNegativeTime},
		{"negative cook time", "Soup", CategoryLunch, 5, -1, 2, ErrNegativeTime},
		{"zero serving size", "Soup", CategoryLunch, 5, 5, 0, ErrInvalidServingSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMeal(tt.title, "", tt.category, tt.prepTime, tt.cookTime, tt.servingSize, nil, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewMeal_ZeroCookTimeAllowed(t *testing.T) {
	// No-bake recipes have zero cook time.
	m, err := NewMeal("Trail Mix Energy Balls", "", CategorySnack, 15, 0, 12, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 15, m.TotalTime())
}

func TestUpdateTitle(t *testing.T) {
	m, err := NewMeal("Old Title", "", CategoryDinner, 5, 5, 2, nil, "")
	require.NoError(t, err)

	require.NoError(t, m.UpdateTitle("New Title"))
	assert.Equal(t, "New Title", m.Title())

	assert.ErrorIs(t, m.UpdateTitle(""), ErrTitleRequired)
	assert.Equal(t, "New Title", m.Title())
}

func TestReplaceInstructions_CopiesInput(t *testing.T) {
	m, err := NewMeal("Tacos", "", CategoryDinner, 5, 5, 2, nil, "")
	require.NoError(t, err)

	steps := []string{"Brown the beef", "Fill the shells"}
	m.ReplaceInstructions(steps)
	steps[0] = "mutated"

	assert.Equal(t, "Brown the beef", m.Instructions()[0])
}

func TestCategoryValid(t *testing.T) {
	for _, c := range []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryDessert, CategoryDrink} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("supper").Valid())
}

func TestRestore_RoundTrips(t *testing.T) {
	id := uuid.New()
	created := time.Now().Add(-time.Hour)

	m := Restore(id, "Beef Tacos", "desc", CategoryDinner, 15, 20, 6, []string{"step"}, "img", created, created)

	assert.Equal(t, id, m.ID())
	assert.Equal(t, "Beef Tacos", m.Title())
	assert.True(t, m.CreatedAt().Equal(created))
}
