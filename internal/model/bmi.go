package model

import "time"

// BMI category constants
const (
	BMICategoryUnderweight = "underweight"
	BMICategoryNormal      = "normal"
	BMICategoryOverweight  = "overweight"
	BMICategoryObese1      = "obese-class-1"
	BMICategoryObese2      = "obese-class-2"
)

// BMIRecord is one body-metric observation. At most one record exists
// per (username, date); a second calculation on the same calendar date
// replaces that day's record.
type BMIRecord struct {
	Username  string    `json:"username" db:"username"`
	Date      string    `json:"date" db:"date"`
	Height    float64   `json:"height" db:"height"`
	Weight    float64   `json:"weight" db:"weight"`
	BMI       float64   `json:"bmi" db:"bmi"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BMIRequest represents a BMI calculation submission
type BMIRequest struct {
	Height float64 `json:"height" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// BMIResult is the computed outcome returned to the client
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Advice   string  `json:"advice"`
	Date     string  `json:"date"`
	Replaced bool    `json:"replaced"`
}
