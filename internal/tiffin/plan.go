// Package tiffin prices meal-plan subscriptions.
package tiffin

import (
	"errors"
	"fmt"
	"slices"

	"panchayat/internal/models"
)

// DefaultDays is the plan length used when a request leaves it unset.
const DefaultDays = 30

var (
	ErrNameRequired    = errors.New("plan name is required")
	ErrUnknownMealType = errors.New("unknown meal type")
)

var dailyRates = map[models.MealType]int{
	models.MealTypeVeg:    80,
	models.MealTypeNonVeg: 120,
	models.MealTypeJain:   90,
}

// DailyRate returns the per-day price of a meal type.
func DailyRate(meal models.MealType) (int, bool) {
	rate, ok := dailyRates[meal]
	return rate, ok
}

// NewPlan prices a plan. An empty meal type means veg and nil days means
// DefaultDays. Explicit zero days price a plan at zero.
func NewPlan(req models.PlanRequest) (models.Plan, error) {
	if req.Name == "" {
		return models.Plan{}, ErrNameRequired
	}
	if err := req.Validate(); err != nil {
		return models.Plan{}, fmt.Errorf("invalid plan request: %w", err)
	}
	if req.MealType == "" {
		req.MealType = models.MealTypeVeg
	}
	days := DefaultDays
	if req.Days != nil {
		days = *req.Days
	}

	rate, ok := DailyRate(req.MealType)
	if !ok {
		return models.Plan{}, fmt.Errorf("%w: %s", ErrUnknownMealType, req.MealType)
	}

	return models.Plan{
		Name:      req.Name,
		MealType:  req.MealType,
		Days:      days,
		DailyRate: rate,
		TotalCost: rate * days,
	}, nil
}

// Combine summarises plans. It returns false when called without any.
func Combine(plans ...models.Plan) (models.PlanSummary, bool) {
	if len(plans) == 0 {
		return models.PlanSummary{}, false
	}

	summary := models.PlanSummary{
		TotalCustomers: len(plans),
		MealBreakdown: map[models.MealType]int{
			models.MealTypeVeg:    0,
			models.MealTypeNonVeg: 0,
		},
	}
	for _, p := range plans {
		summary.TotalRevenue += p.TotalCost
		summary.MealBreakdown[p.MealType]++
	}
	return summary, true
}

// ApplyAddons returns a new plan with the add-on prices added to the daily
// rate and the total recomputed. plan is left untouched.
func ApplyAddons(plan *models.Plan, addons ...models.Addon) *models.Plan {
	if plan == nil {
		return nil
	}

	next := *plan
	next.AddonNames = slices.Clone(plan.AddonNames)
	for _, a := range addons {
		next.DailyRate += a.Price
		next.AddonNames = append(next.AddonNames, a.Name)
	}
	if next.AddonNames == nil {
		next.AddonNames = []string{}
	}
	next.TotalCost = next.DailyRate * next.Days
	return &next
}
