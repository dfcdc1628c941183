package mealplan

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlan(t *testing.T, date time.Time, mealType MealType, mealID uuid.UUID, timeOfDay string) *MealPlan {
	t.Helper()
	p, err := NewMealPlan(date, mealType, mealID, timeOfDay, "")
	require.NoError(t, err)
	return p
}

func staticResolver(titles map[uuid.UUID]string) MealResolver {
	return func(id uuid.UUID) (string, bool) {
		title, ok := titles[id]
		return title, ok
	}
}

func TestNormalizeToDay_Idempotent(t *testing.T) {
	ts := time.Date(2026, 3, 14, 15, 9, 26, 535_000_000, time.Local)

	once := NormalizeToDay(ts)
	twice := NormalizeToDay(once)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, 0, once.Hour())
	assert.Equal(t, 0, once.Minute())
	assert.Equal(t, 0, once.Second())
	assert.Equal(t, 0, once.Nanosecond())
}

func TestNormalizeToDay_EdgesOfDaySameBucket(t *testing.T) {
	lateNight := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	earlyMorning := time.Date(2026, 3, 14, 0, 0, 1, 0, time.Local)

	assert.True(t, SameDay(lateNight, earlyMorning))
	assert.True(t, NormalizeToDay(lateNight).Equal(NormalizeToDay(earlyMorning)))
}

func TestNormalizeToDay_AdjacentDaysDiffer(t *testing.T) {
	beforeMidnight := time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local)
	afterMidnight := time.Date(2026, 3, 15, 0, 0, 1, 0, time.Local)

	assert.False(t, SameDay(beforeMidnight, afterMidnight))
}

func TestPlansForDate_PreservesInsertionOrder(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()

	// Dinner inserted first, breakfast second. The bucket keeps that
	// order even though breakfast's display time is earlier.
	dinner := mustPlan(t, day, MealTypeDinner, mealID, "19:00")
	breakfast := mustPlan(t, day, MealTypeBreakfast, mealID, "08:00")

	bucket := PlansForDate([]*MealPlan{dinner, breakfast}, day)

	require.Len(t, bucket, 2)
	assert.Equal(t, dinner.ID(), bucket[0].ID())
	assert.Equal(t, breakfast.ID(), bucket[1].ID())
}

func TestPlansForDate_IgnoresTimeOfDayComponent(t *testing.T) {
	mealID := uuid.New()
	morning := time.Date(2026, 3, 14, 6, 0, 0, 0, time.Local)
	night := time.Date(2026, 3, 14, 23, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 15, 1, 0, 0, 0, time.Local)

	plans := []*MealPlan{
		mustPlan(t, morning, MealTypeBreakfast, mealID, ""),
		mustPlan(t, night, MealTypeDinner, mealID, ""),
		mustPlan(t, nextDay, MealTypeBreakfast, mealID, ""),
	}

	bucket := PlansForDate(plans, time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local))
	assert.Len(t, bucket, 2)
}

func TestPlansForDate_EmptyDay(t *testing.T) {
	mealID := uuid.New()
	plans := []*MealPlan{
		mustPlan(t, time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local), MealTypeBreakfast, mealID, ""),
	}

	bucket := PlansForDate(plans, time.Date(2026, 3, 20, 0, 0, 0, 0, time.Local))
	assert.Empty(t, bucket)
}

func TestSummarize_WeekTruncatesToFourWithOverflow(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()
	titles := map[uuid.UUID]string{mealID: "Spaghetti Carbonara"}

	var plans []*MealPlan
	for i := 0; i < 5; i++ {
		plans = append(plans, mustPlan(t, day, MealTypeDinner, mealID, fmt.Sprintf("1%d:00", i)))
	}

	summary := Summarize(plans, day, ViewWeek, staticResolver(titles))

	assert.Equal(t, 5, summary.Total)
	assert.Len(t, summary.Entries, 4)
	assert.Equal(t, 1, summary.Overflow)
	// The visible entries are the first four in insertion order.
	for i, e := range summary.Entries {
		assert.Equal(t, plans[i].ID(), e.PlanID)
	}
}

func TestSummarize_WeekExactlyAtLimitHasNoOverflow(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()
	titles := map[uuid.UUID]string{mealID: "Beef Tacos"}

	var plans []*MealPlan
	for i := 0; i < 4; i++ {
		plans = append(plans, mustPlan(t, day, MealTypeLunch, mealID, ""))
	}

	summary := Summarize(plans, day, ViewWeek, staticResolver(titles))

	assert.Len(t, summary.Entries, 4)
	assert.Equal(t, 0, summary.Overflow)
}

func TestSummarize_WeekMissingMealFallsBackToGenericTitle(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	deletedMealID := uuid.New()

	plans := []*MealPlan{mustPlan(t, day, MealTypeDinner, deletedMealID, "")}

	summary := Summarize(plans, day, ViewWeek, staticResolver(nil))

	require.Len(t, summary.Entries, 1)
	assert.Equal(t, "Meal", summary.Entries[0].MealTitle)
}

func TestSummarize_DaySkipsDanglingMealRefs(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	liveMealID := uuid.New()
	deletedMealID := uuid.New()
	titles := map[uuid.UUID]string{liveMealID: "Classic Pancakes"}

	plans := []*MealPlan{
		mustPlan(t, day, MealTypeBreakfast, liveMealID, "08:00"),
		mustPlan(t, day, MealTypeLunch, deletedMealID, "12:00"),
	}

	summary := Summarize(plans, day, ViewDay, staticResolver(titles))

	// Total counts both plans; the dangling one is only hidden from the
	// rendered entries.
	assert.Equal(t, 2, summary.Total)
	require.Len(t, summary.Entries, 1)
	assert.Equal(t, "Classic Pancakes", summary.Entries[0].MealTitle)
}

func TestSummarize_DayKeepsFullDetail(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()
	titles := map[uuid.UUID]string{mealID: "Avocado Toast"}

	p, err := NewMealPlan(day, MealTypeBreakfast, mealID, "07:30", "extra chili flakes")
	require.NoError(t, err)

	summary := Summarize([]*MealPlan{p}, day, ViewDay, staticResolver(titles))

	require.Len(t, summary.Entries, 1)
	entry := summary.Entries[0]
	assert.Equal(t, "07:30", entry.TimeOfDay)
	assert.Equal(t, "extra chili flakes", entry.Notes)
	assert.Equal(t, MealTypeBreakfast, entry.MealType)
}

func TestSummarize_MonthCapsMarksAtThree(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()

	var plans []*MealPlan
	for _, mt := range []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeDinner} {
		plans = append(plans, mustPlan(t, day, mt, mealID, ""))
	}

	summary := Summarize(plans, day, ViewMonth, staticResolver(nil))

	assert.Equal(t, 5, summary.Total)
	require.Len(t, summary.Marks, 3)
	assert.True(t, summary.MoreMark)
	assert.Equal(t, MealTypeBreakfast, summary.Marks[0].MealType)
	assert.Equal(t, MealTypeLunch, summary.Marks[1].MealType)
	assert.Equal(t, MealTypeDinner, summary.Marks[2].MealType)
	assert.Empty(t, summary.Entries)
}

func TestSummarize_MonthAtLimitHasNoMoreMark(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	mealID := uuid.New()

	var plans []*MealPlan
	for i := 0; i < 3; i++ {
		plans = append(plans, mustPlan(t, day, MealTypeDinner, mealID, ""))
	}

	summary := Summarize(plans, day, ViewMonth, staticResolver(nil))

	assert.Len(t, summary.Marks, 3)
	assert.False(t, summary.MoreMark)
}

func TestSummarize_EmptyDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	for _, view := range []View{ViewDay, ViewWeek, ViewMonth} {
		summary := Summarize(nil, day, view, staticResolver(nil))
		assert.Equal(t, 0, summary.Total)
		assert.Empty(t, summary.Entries)
		assert.Empty(t, summary.Marks)
		assert.Equal(t, 0, summary.Overflow)
		assert.False(t, summary.MoreMark)
	}
}

func TestDaysInView_Day(t *testing.T) {
	anchor := time.Date(2026, 3, 14, 16, 45, 0, 0, time.Local)

	days := DaysInView(anchor, ViewDay)

	require.Len(t, days, 1)
	assert.True(t, days[0].Equal(NormalizeToDay(anchor)))
}

func TestDaysInView_WeekStartsSunday(t *testing.T) {
	// March 14 2026 is a Saturday.
	anchor := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

	days := DaysInView(anchor, ViewWeek)

	require.Len(t, days, 7)
	assert.Equal(t, time.Sunday, days[0].Weekday())
	assert.Equal(t, 8, days[0].Day())
	assert.Equal(t, time.Saturday, days[6].Weekday())
	assert.Equal(t, 14, days[6].Day())
}

func TestDaysInView_MonthCoversFullMonth(t *testing.T) {
	anchor := time.Date(2026, 2, 10, 12, 0, 0, 0, time.Local)

	days := DaysInView(anchor, ViewMonth)

	require.Len(t, days, 28) // February 2026
	assert.Equal(t, 1, days[0].Day())
	assert.Equal(t, 28, days[len(days)-1].Day())
	for _, d := range days {
		assert.Equal(t, time.February, d.Month())
	}
}

func TestViewValid(t *testing.T) {
	assert.True(t, ViewDay.Valid())
	assert.True(t, ViewWeek.Valid())
	assert.True(t, ViewMonth.Valid())
	assert.False(t, View("year").Valid())
}
