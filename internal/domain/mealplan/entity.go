// Package mealplan contains the core domain logic for the meal-plan
// calendar: plan records, day bucketing and the per-granularity view
// summaries.
package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/shared"
)

// MealType is the meal-time slot a plan occupies
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Valid reports whether the meal type is one of the known values
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// MealPlan assigns a meal to a calendar day and meal-time slot.
// The date keeps whatever time-of-day component it was created with;
// bucketing normalizes to the local calendar day (see calendar.go).
type MealPlan struct {
	shared.AggregateRoot

	id        uuid.UUID
	date      time.Time
	mealType  MealType
	mealID    uuid.UUID
	timeOfDay string // optional "HH:MM", display only
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

// NewMealPlan creates a new plan with validation. A meal selection is
// required: plans without one are rejected rather than silently dropped.
func NewMealPlan(date time.Time, mealType MealType, mealID uuid.UUID, timeOfDay, notes string) (*MealPlan, error) {
	if mealID == uuid.Nil {
		return nil, ErrNoMealSelected
	}
	if !mealType.Valid() {
		return nil, ErrInvalidMealType
	}
	if err := validateTimeOfDay(timeOfDay); err != nil {
		return nil, err
	}

	now := time.Now()
	plan := &MealPlan{
		id:        uuid.New(),
		date:      date,
		mealType:  mealType,
		mealID:    mealID,
		timeOfDay: timeOfDay,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}

	plan.AddEvent(PlanScheduledEvent{
		PlanID:      plan.id,
		MealID:      mealID,
		MealType:    mealType,
		Day:         NormalizeToDay(date),
		ScheduledAt: now,
	})

	return plan, nil
}

// Restore rebuilds a plan from persisted state for repository mappers.
func Restore(id uuid.UUID, date time.Time, mealType MealType, mealID uuid.UUID, timeOfDay, notes string, createdAt, updatedAt time.Time) *MealPlan {
	return &MealPlan{
		id:        id,
		date:      date,
		mealType:  mealType,
		mealID:    mealID,
		timeOfDay: timeOfDay,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the plan's unique identifier
func (p *MealPlan) ID() uuid.UUID {
	return p.id
}

// Date returns the plan's date, time-of-day component included
func (p *MealPlan) Date() time.Time {
	return p.date
}

// MealType returns the plan's meal-time slot
func (p *MealPlan) MealType() MealType {
	return p.mealType
}

// MealID returns the referenced meal id
func (p *MealPlan) MealID() uuid.UUID {
	return p.mealID
}

// TimeOfDay returns the optional "HH:MM" display time
func (p *MealPlan) TimeOfDay() string {
	return p.timeOfDay
}

// Notes returns the plan's free-form notes
func (p *MealPlan) Notes() string {
	return p.notes
}

// CreatedAt returns when the plan was created
func (p *MealPlan) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the plan was last updated
func (p *MealPlan) UpdatedAt() time.Time {
	return p.updatedAt
}

// Reschedule moves the plan to another date
func (p *MealPlan) Reschedule(date time.Time) {
	oldDay := NormalizeToDay(p.date)
	p.date = date
	p.touch()

	newDay := NormalizeToDay(date)
	if !oldDay.Equal(newDay) {
		p.AddEvent(PlanRescheduledEvent{
			PlanID:        p.id,
			OldDay:        oldDay,
			NewDay:        newDay,
			RescheduledAt: p.updatedAt,
		})
	}
}

// UpdateMealType changes the meal-time slot with validation
func (p *MealPlan) UpdateMealType(mealType MealType) error {
	if !mealType.Valid() {
		return ErrInvalidMealType
	}
	p.mealType = mealType
	p.touch()
	return nil
}

// UpdateMeal changes the referenced meal
func (p *MealPlan) UpdateMeal(mealID uuid.UUID) error {
	if mealID == uuid.Nil {
		return ErrNoMealSelected
	}
	p.mealID = mealID
	p.touch()
	return nil
}

// UpdateTimeOfDay changes the optional display time
func (p *MealPlan) UpdateTimeOfDay(timeOfDay string) error {
	if err := validateTimeOfDay(timeOfDay); err != nil {
		return err
	}
	p.timeOfDay = timeOfDay
	p.touch()
	return nil
}

// UpdateNotes changes the plan's notes
func (p *MealPlan) UpdateNotes(notes string) {
	p.notes = notes
	p.touch()
}

func (p *MealPlan) touch() {
	p.updatedAt = time.Now()
}

// validateTimeOfDay accepts an empty string or a 24h "HH:MM" value
func validateTimeOfDay(timeOfDay string) error {
	if timeOfDay == "" {
		return nil
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return ErrInvalidTimeOfDay
	}
	return nil
}
