package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MealType identifies a tiffin menu.
type MealType string

const (
	MealTypeVeg    MealType = "veg"
	MealTypeNonVeg MealType = "nonveg"
	MealTypeJain   MealType = "jain"
)

// PlanRequest describes the plan a customer asks for. An empty MealType and
// a nil Days pick the defaults; an explicit zero Days is kept.
type PlanRequest struct {
	Name     string   `json:"name"`
	MealType MealType `json:"mealType"`
	Days     *int     `json:"days,omitempty"`
}

// Validate checks the fields that have no default.
func (r PlanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Days, validation.Min(0)),
	)
}

// Plan is a priced tiffin subscription.
type Plan struct {
	Name       string   `json:"name"`
	MealType   MealType `json:"mealType"`
	Days       int      `json:"days"`
	DailyRate  int      `json:"dailyRate"`
	TotalCost  int      `json:"totalCost"`
	AddonNames []string `json:"addonNames,omitempty"`
}

// Addon is an extra item charged per day.
type Addon struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PlanSummary aggregates several plans.
type PlanSummary struct {
	TotalCustomers int              `json:"totalCustomers"`
	TotalRevenue   int              `json:"totalRevenue"`
	MealBreakdown  map[MealType]int `json:"mealBreakdown"`
}
