package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/novamoonx/demmi/internal/domain/mealplan"
	"github.com/novamoonx/demmi/internal/ports/inbound"
	"github.com/novamoonx/demmi/pkg/errors"
)

// MealPlanHandlers handles calendar and plan requests
type MealPlanHandlers struct {
	plans  inbound.MealPlanService
	logger *zap.Logger
}

// NewMealPlanHandlers creates a new meal plan handlers instance
func NewMealPlanHandlers(plans inbound.MealPlanService, logger *zap.Logger) *MealPlanHandlers {
	return &MealPlanHandlers{plans: plans, logger: logger}
}

// List handles GET /api/v1/plans. With ?date= (milliseconds) it
// returns only that day's plans.
func (h *MealPlanHandlers) List(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("date"); raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, h.logger, errors.NewBadRequestError("date must be a millisecond timestamp"))
			return
		}
		result, err := h.plans.PlansForDate(r.Context(), time.UnixMilli(millis))
		if err != nil {
			writeError(w, r, h.logger, err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, result)
		return
	}

	result, err := h.plans.ListPlans(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Calendar handles GET /api/v1/plans/calendar?view=week&anchor=<ms>.
// The anchor defaults to today.
func (h *MealPlanHandlers) Calendar(w http.ResponseWriter, r *http.Request) {
	view := mealplan.View(r.URL.Query().Get("view"))
	if view == "" {
		view = mealplan.ViewWeek
	}
	if !view.Valid() {
		writeError(w, r, h.logger, errors.NewValidationError("view must be day, week or month"))
		return
	}

	anchor := time.Now()
	if raw := r.URL.Query().Get("anchor"); raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, h.logger, errors.NewBadRequestError("anchor must be a millisecond timestamp"))
			return
		}
		anchor = time.UnixMilli(millis)
	}

	result, err := h.plans.GetCalendarView(r.Context(), anchor, view)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/plans/{id}
func (h *MealPlanHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.plans.GetPlanByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Create handles POST /api/v1/plans
func (h *MealPlanHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.CreatePlanCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.plans.CreatePlan(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, result)
}

// Update handles PUT /api/v1/plans/{id}
func (h *MealPlanHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd inbound.UpdatePlanCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	cmd.PlanID = id

	result, err := h.plans.UpdatePlan(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

// Delete handles DELETE /api/v1/plans/{id}
func (h *MealPlanHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.plans.DeletePlan(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusNoContent, nil)
}
