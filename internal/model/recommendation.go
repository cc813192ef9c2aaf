package model

// Exercise intensity constants
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Target group tags used to match food plans to a user's condition
const (
	TargetGroupAll        = "all"
	TargetGroupOverweight = "overweight"
	TargetGroupObese      = "obese"
	TargetGroupDiabetes   = "diabetes"
)

// Exercise is one entry in the static exercise catalog
type Exercise struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Intensity   string   `json:"intensity"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// DayMeals is one day of a weekly food plan
type DayMeals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// FoodPlan is a weekly meal plan aimed at one or more target groups
type FoodPlan struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	TargetGroups []string            `json:"target_groups"`
	WeeklyPlan   map[string]DayMeals `json:"weekly_plan"`
}
