package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMealPlan(t *testing.T) {
	mealID := uuid.New()
	date := time.Date(2026, 3, 14, 18, 30, 0, 0, time.Local)

	p, err := NewMealPlan(date, MealTypeDinner, mealID, "19:00", "family dinner")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.Equal(t, mealID, p.MealID())
	assert.Equal(t, MealTypeDinner, p.MealType())
	assert.Equal(t, "19:00", p.TimeOfDay())
	assert.Equal(t, "family dinner", p.Notes())
	assert.True(t, p.Date().Equal(date))
}

func TestNewMealPlan_EmitsScheduledEvent(t *testing.T) {
	p, err := NewMealPlan(time.Now(), MealTypeLunch, uuid.New(), "", "")
	require.NoError(t, err)

	events := p.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "mealplan.scheduled", events[0].EventName())
}

func TestNewMealPlan_RequiresMealSelection(t *testing.T) {
	_, err := NewMealPlan(time.Now(), MealTypeDinner, uuid.Nil, "", "")
	assert.ErrorIs(t, err, ErrNoMealSelected)
}

func TestNewMealPlan_RejectsUnknownMealType(t *testing.T) {
	_, err := NewMealPlan(time.Now(), MealType("brunch"), uuid.New(), "", "")
	assert.ErrorIs(t, err, ErrInvalidMealType)
}

func TestNewMealPlan_TimeOfDayValidation(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		wantErr   bool
	}{
		{"empty is allowed", "", false},
		{"valid 24h time", "07:05", false},
		{"midnight", "00:00", false},
		{"late evening", "23:59", false},
		{"missing minutes", "19", true},
		{"out of range hour", "25:00", true},
		{"with seconds", "19:00:00", true},
		{"words", "dinner time", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMealPlan(time.Now(), MealTypeDinner, uuid.New(), tt.timeOfDay, "")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReschedule_EmitsEventOnlyWhenDayChanges(t *testing.T) {
	day := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	p, err := NewMealPlan(day, MealTypeBreakfast, uuid.New(), "", "")
	require.NoError(t, err)
	p.ClearEvents()

	// Same calendar day, different time: no reschedule event.
	p.Reschedule(time.Date(2026, 3, 14, 20, 0, 0, 0, time.Local))
	assert.Empty(t, p.Events())

	p.Reschedule(time.Date(2026, 3, 16, 8, 0, 0, 0, time.Local))
	events := p.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "mealplan.rescheduled", events[0].EventName())
}

func TestUpdateMeal_RejectsNil(t *testing.T) {
	p, err := NewMealPlan(time.Now(), MealTypeSnack, uuid.New(), "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, p.UpdateMeal(uuid.Nil), ErrNoMealSelected)
}

func TestRestore_RoundTrips(t *testing.T) {
	id := uuid.New()
	mealID := uuid.New()
	date := time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)
	created := date.Add(-time.Hour)

	p := Restore(id, date, MealTypeDinner, mealID, "18:30", "notes", created, created)

	assert.Equal(t, id, p.ID())
	assert.Equal(t, mealID, p.MealID())
	assert.True(t, p.CreatedAt().Equal(created))
	assert.Empty(t, p.Events())
}
