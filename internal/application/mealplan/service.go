// Package mealplan provides the application layer for the meal-plan
// calendar: plan CRUD plus the per-granularity view queries.
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/internal/ports/outbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// MealPlanService implements the calendar use cases
type MealPlanService struct {
	planRepo outbound.MealPlanRepository
	mealRepo outbound.MealRepository
	logger   *zap.Logger
}

// NewMealPlanService creates a new meal-plan service
func NewMealPlanService(
	planRepo outbound.MealPlanRepository,
	mealRepo outbound.MealRepository,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		planRepo: planRepo,
		mealRepo: mealRepo,
		logger:   logger.Named("mealplan-service"),
	}
}

// CreatePlan schedules a meal onto a calendar day
func (s *MealPlanService) CreatePlan(ctx context.Context, cmd inbound.CreatePlanCommand) (*inbound.MealPlanDTO, error) {
	date := time.UnixMilli(cmd.Date)

	entity, err := mealplan.NewMealPlan(date, cmd.MealType, cmd.MealID, cmd.TimeOfDay, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	// The referenced meal must exist at scheduling time. Later deletion
	// of the meal leaves the plan dangling, which the views tolerate.
	m, err := s.mealRepo.FindByID(ctx, cmd.MealID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal", err)
	}
	if m == nil {
		return nil, errors.NewMealNotFoundError(cmd.MealID.String())
	}

	if err := s.planRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create meal plan", err)
	}

	s.publishEvents(entity)

	s.logger.Info("Meal planned",
		zap.String("plan_id", entity.ID().String()),
		zap.String("meal_id", cmd.MealID.String()),
		zap.String("meal_type", string(cmd.MealType)),
		zap.Time("day", mealplan.NormalizeToDay(date)),
	)

	dto := planToDTO(entity)
	return &dto, nil
}

// UpdatePlan applies a partial update; nil command fields keep their
// current value. An unknown id is an error, not an upsert.
func (s *MealPlanService) UpdatePlan(ctx context.Context, cmd inbound.UpdatePlanCommand) (*inbound.MealPlanDTO, error) {
	entity, err := s.planRepo.FindByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if entity == nil {
		return nil, errors.NewPlanNotFoundError(cmd.PlanID.String())
	}

	if cmd.Date != nil {
		entity.Reschedule(time.UnixMilli(*cmd.Date))
	}
	if cmd.MealType != nil {
		if err := entity.UpdateMealType(*cmd.MealType); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.MealID != nil {
		if err := entity.UpdateMeal(*cmd.MealID); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.TimeOfDay != nil {
		if err := entity.UpdateTimeOfDay(*cmd.TimeOfDay); err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
	}
	if cmd.Notes != nil {
		entity.UpdateNotes(*cmd.Notes)
	}

	if err := s.planRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update meal plan", err)
	}

	s.publishEvents(entity)

	dto := planToDTO(entity)
	return &dto, nil
}

// DeletePlan removes a plan. Deleting an unknown id is a no-op.
func (s *MealPlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	if err := s.planRepo.Delete(ctx, planID); err != nil {
		return errors.NewDatabaseError("delete meal plan", err)
	}
	s.logger.Info("Meal plan deleted", zap.String("plan_id", planID.String()))
	return nil
}

// GetPlanByID returns a single plan
func (s *MealPlanService) GetPlanByID(ctx context.Context, planID uuid.UUID) (*inbound.MealPlanDTO, error) {
	entity, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, errors.NewDatabaseError("find meal plan", err)
	}
	if entity == nil {
		return nil, errors.NewPlanNotFoundError(planID.String())
	}

	dto := planToDTO(entity)
	return &dto, nil
}

// ListPlans returns all plans in insertion order
func (s *MealPlanService) ListPlans(ctx context.Context) ([]inbound.MealPlanDTO, error) {
	entities, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plans", err)
	}
	return plansToDTOs(entities), nil
}

// PlansForDate returns the plans bucketed onto the given local calendar
// day, in insertion order
func (s *MealPlanService) PlansForDate(ctx context.Context, date time.Time) ([]inbound.MealPlanDTO, error) {
	entities, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plans", err)
	}
	return plansToDTOs(mealplan.PlansForDate(entities, date)), nil
}

// GetCalendarView renders the day run for a granularity around an
// anchor date, applying each view's truncation rules
func (s *MealPlanService) GetCalendarView(ctx context.Context, anchor time.Time, view mealplan.View) (*inbound.CalendarViewDTO, error) {
	if !view.Valid() {
		return nil, errors.NewValidationError(mealplan.ErrInvalidView.Error()).WithCause(mealplan.ErrInvalidView)
	}

	days := mealplan.DaysInView(anchor, view)

	plans, err := s.planRepo.FindByDateRange(ctx, days[0], days[len(days)-1].AddDate(0, 0, 1))
	if err != nil {
		return nil, errors.NewDatabaseError("list meal plans", err)
	}

	resolve, err := s.mealResolver(ctx, plans)
	if err != nil {
		return nil, err
	}

	result := &inbound.CalendarViewDTO{
		View: view,
		Days: make([]inbound.CalendarDayDTO, 0, len(days)),
	}
	for _, day := range days {
		summary := mealplan.Summarize(plans, day, view, resolve)
		result.Days = append(result.Days, summaryToDTO(summary))
	}
	return result, nil
}

// publishEvents drains the events recorded on the aggregate after a
// successful write. There is no message bus behind this deployment, so
// events end at the log.
func (s *MealPlanService) publishEvents(entity *mealplan.MealPlan) {
	for _, event := range entity.Events() {
		s.logger.Debug("Domain event",
			zap.String("event", event.EventName()),
			zap.String("plan_id", entity.ID().String()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
}

// mealResolver preloads the titles of every meal the plans reference so
// Summarize never touches the repository per entry
func (s *MealPlanService) mealResolver(ctx context.Context, plans []*mealplan.MealPlan) (mealplan.MealResolver, error) {
	titles := make(map[uuid.UUID]string)
	for _, p := range plans {
		id := p.MealID()
		if _, seen := titles[id]; seen {
			continue
		}
		m, err := s.mealRepo.FindByID(ctx, id)
		if err != nil {
			return nil, errors.NewDatabaseError("find meal", err)
		}
		if m != nil {
			titles[id] = m.Title()
		}
	}
	return func(id uuid.UUID) (string, bool) {
		title, ok := titles[id]
		return title, ok
	}, nil
}

func planToDTO(p *mealplan.MealPlan) inbound.MealPlanDTO {
	return inbound.MealPlanDTO{
		ID:       p.ID(),
		Date:     p.Date().UnixMilli(),
		MealType: p.MealType(),
		MealID:   p.MealID(),
		Time:     p.TimeOfDay(),
		Notes:    p.Notes(),
	}
}

func plansToDTOs(plans []*mealplan.MealPlan) []inbound.MealPlanDTO {
	dtos := make([]inbound.MealPlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, planToDTO(p))
	}
	return dtos
}

func summaryToDTO(s mealplan.DaySummary) inbound.CalendarDayDTO {
	day := inbound.CalendarDayDTO{
		Date:     s.Date.UnixMilli(),
		Total:    s.Total,
		Overflow: s.Overflow,
		MoreMark: s.MoreMark,
	}
	for _, e := range s.Entries {
		day.Entries = append(day.Entries, inbound.CalendarEntryDTO{
			PlanID:    e.PlanID,
			MealID:    e.MealID,
			MealTitle: e.MealTitle,
			MealType:  e.MealType,
			Time:      e.TimeOfDay,
			Notes:     e.Notes,
		})
	}
	for _, m := range s.Marks {
		day.Marks = append(day.Marks, inbound.CalendarMarkDTO{
			PlanID:   m.PlanID,
			MealType: m.MealType,
		})
	}
	return day
}
