package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// PlanScheduledEvent is raised when a meal is planned onto a day
type PlanScheduledEvent struct {
	PlanID      uuid.UUID
	MealID      uuid.UUID
	MealType    MealType
	Day         time.Time
	ScheduledAt time.Time
}

// EventName returns the event name
func (e PlanScheduledEvent) EventName() string { return "mealplan.scheduled" }

// OccurredAt returns when the event occurred
func (e PlanScheduledEvent) OccurredAt() time.Time { return e.ScheduledAt }

// PlanRescheduledEvent is raised when a plan moves to another day
type PlanRescheduledEvent struct {
	PlanID        uuid.UUID
	OldDay        time.Time
	NewDay        time.Time
	RescheduledAt time.Time
}

// EventName returns the event name
func (e PlanRescheduledEvent) EventName() string { return "mealplan.rescheduled" }

// OccurredAt returns when the event occurred
func (e PlanRescheduledEvent) OccurredAt() time.Time { return e.RescheduledAt }
