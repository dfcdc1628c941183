package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/novamoonx/demmi/internal/domain/mealplan"
)

// MealPlanService defines the use cases for the meal-plan calendar
type MealPlanService interface {
	CreatePlan(ctx context.Context, cmd CreatePlanCommand) (*MealPlanDTO, error)
	UpdatePlan(ctx context.Context, cmd UpdatePlanCommand) (*MealPlanDTO, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	GetPlanByID(ctx context.Context, planID uuid.UUID) (*MealPlanDTO, error)
	ListPlans(ctx context.Context) ([]MealPlanDTO, error)

	// Calendar queries
	PlansForDate(ctx context.Context, date time.Time) ([]MealPlanDTO, error)
	GetCalendarView(ctx context.Context, anchor time.Time, view mealplan.View) (*CalendarViewDTO, error)
}

// CreatePlanCommand contains data for planning a meal onto a day.
// Date is a millisecond Unix timestamp; its time-of-day component is
// irrelevant for bucketing.
type CreatePlanCommand struct {
	Date      int64             `json:"date" validate:"required"`
	MealType  mealplan.MealType `json:"meal_type" validate:"required"`
	MealID    uuid.UUID         `json:"meal_id" validate:"required"`
	TimeOfDay string            `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Notes     string            `json:"notes,omitempty"`
}

// UpdatePlanCommand contains a partial-field update; nil fields are
// left untouched
type UpdatePlanCommand struct {
	PlanID    uuid.UUID          `json:"-"`
	Date      *int64             `json:"date"`
	MealType  *mealplan.MealType `json:"meal_type"`
	MealID    *uuid.UUID         `json:"meal_id"`
	TimeOfDay *string            `json:"time" validate:"omitempty,datetime=15:04"`
	Notes     *string            `json:"notes"`
}

// MealPlanDTO is the data transfer object for plans
type MealPlanDTO struct {
	ID       uuid.UUID         `json:"id"`
	Date     int64             `json:"date"` // milliseconds
	MealType mealplan.MealType `json:"meal_type"`
	MealID   uuid.UUID         `json:"meal_id"`
	Time     string            `json:"time,omitempty"`
	Notes    string            `json:"notes,omitempty"`
}

// CalendarEntryDTO is one display-ready plan line in a day cell
type CalendarEntryDTO struct {
	PlanID    uuid.UUID         `json:"plan_id"`
	MealID    uuid.UUID         `json:"meal_id"`
	MealTitle string            `json:"meal_title"`
	MealType  mealplan.MealType `json:"meal_type"`
	Time      string            `json:"time,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

// CalendarMarkDTO is one month-view indicator mark
type CalendarMarkDTO struct {
	PlanID   uuid.UUID         `json:"plan_id"`
	MealType mealplan.MealType `json:"meal_type"`
}

// CalendarDayDTO is the summary of one day cell at the requested
// granularity
type CalendarDayDTO struct {
	Date     int64              `json:"date"` // local midnight, milliseconds
	Total    int                `json:"total"`
	Entries  []CalendarEntryDTO `json:"entries,omitempty"`
	Overflow int                `json:"overflow,omitempty"`
	Marks    []CalendarMarkDTO  `json:"marks,omitempty"`
	MoreMark bool               `json:"more_mark,omitempty"`
}

// CalendarViewDTO is the rendered range for a granularity around an
// anchor date
type CalendarViewDTO struct {
	View mealplan.View    `json:"view"`
	Days []CalendarDayDTO `json:"days"`
}
