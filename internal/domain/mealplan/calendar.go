package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// View is the calendar's display granularity
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// Valid reports whether the view is one of the known granularities
func (v View) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// Per-day truncation limits for the condensed granularities.
const (
	weekEntryLimit = 4
	monthMarkLimit = 3
)

// NormalizeToDay returns local midnight of t's calendar day. Two
// timestamps anywhere within the same local day normalize to the same
// instant, which is the bucketing invariant the calendar relies on.
func NormalizeToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day
func SameDay(a, b time.Time) bool {
	return NormalizeToDay(a).Equal(NormalizeToDay(b))
}

// PlansForDate returns the plans whose date falls on the given local
// calendar day. The result preserves the insertion order of the input;
// no secondary sort by the display time is applied, so a dinner plan
// inserted before a breakfast plan lists first even at "19:00" vs
// "08:00". An empty result is valid and common.
func PlansForDate(plans []*MealPlan, date time.Time) []*MealPlan {
	day := NormalizeToDay(date)
	var result []*MealPlan
	for _, p := range plans {
		if NormalizeToDay(p.date).Equal(day) {
			result = append(result, p)
		}
	}
	return result
}

// MealResolver looks up a meal title by id. The second return reports
// whether the meal still exists; plans may reference deleted meals.
type MealResolver func(id uuid.UUID) (string, bool)

// Entry is one display-ready plan line within a day summary
type Entry struct {
	PlanID    uuid.UUID
	MealID    uuid.UUID
	MealTitle string
	MealType  MealType
	TimeOfDay string
	Notes     string
}

// Mark is a month-view indicator, color-keyed by meal type
type Mark struct {
	PlanID   uuid.UUID
	MealType MealType
}

// DaySummary is the display-ready result for one calendar day at a
// given granularity. Entries is populated for day and week views,
// Marks for month view.
type DaySummary struct {
	Date     time.Time
	View     View
	Total    int
	Entries  []Entry
	Overflow int  // week view: count hidden past the entry limit
	Marks    []Mark
	MoreMark bool // month view: overflow indicator mark
}

// Summarize buckets the plans onto the given day and condenses them
// per the view's truncation rules:
//
//   - day: every plan in insertion order, full detail; plans whose
//     meal no longer exists are skipped.
//   - week: the first 4 plans plus an overflow count. Missing meals
//     are not skipped here; the entry falls back to a generic title.
//   - month: up to 3 type-coded marks plus one overflow mark; titles
//     are not resolved at this granularity.
func Summarize(plans []*MealPlan, date time.Time, view View, resolve MealResolver) DaySummary {
	bucket := PlansForDate(plans, date)
	summary := DaySummary{
		Date:  NormalizeToDay(date),
		View:  view,
		Total: len(bucket),
	}

	switch view {
	case ViewWeek:
		limit := len(bucket)
		if limit > weekEntryLimit {
			limit = weekEntryLimit
			summary.Overflow = len(bucket) - weekEntryLimit
		}
		for _, p := range bucket[:limit] {
			title, ok := resolve(p.mealID)
			if !ok {
				title = "Meal"
			}
			summary.Entries = append(summary.Entries, entryFor(p, title))
		}
	case ViewMonth:
		limit := len(bucket)
		if limit > monthMarkLimit {
			limit = monthMarkLimit
			summary.MoreMark = true
		}
		for _, p := range bucket[:limit] {
			summary.Marks = append(summary.Marks, Mark{PlanID: p.id, MealType: p.mealType})
		}
	default: // day
		for _, p := range bucket {
			title, ok := resolve(p.mealID)
			if !ok {
				continue
			}
			summary.Entries = append(summary.Entries, entryFor(p, title))
		}
	}

	return summary
}

// DaysInView returns the run of calendar days a view renders around an
// anchor date: the day itself, the Sunday-to-Saturday week containing
// it, or every day of its month.
func DaysInView(anchor time.Time, view View) []time.Time {
	day := NormalizeToDay(anchor)

	switch view {
	case ViewWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		days := make([]time.Time, 7)
		for i := range days {
			days[i] = start.AddDate(0, 0, i)
		}
		return days
	case ViewMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		next := first.AddDate(0, 1, 0)
		var days []time.Time
		for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
		return days
	default:
		return []time.Time{day}
	}
}

func entryFor(p *MealPlan, title string) Entry {
	return Entry{
		PlanID:    p.id,
		MealID:    p.mealID,
		MealTitle: title,
		MealType:  p.mealType,
		TimeOfDay: p.timeOfDay,
		Notes:     p.notes,
	}
}
