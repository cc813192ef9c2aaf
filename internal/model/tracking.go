package model

import "time"

// TrackingRecord is one logged body-measurement observation. Weight is
// mandatory; the girth and vitals fields are optional. Records are
// append-oriented: one per (username, date), never deleted.
type TrackingRecord struct {
	Username      string    `json:"username" db:"username"`
	Date          string    `json:"date" db:"date"`
	Weight        float64   `json:"weight" db:"weight"`
	Chest         *float64  `json:"chest,omitempty" db:"chest"`
	Waist         *float64  `json:"waist,omitempty" db:"waist"`
	BloodPressure *string   `json:"blood_pressure,omitempty" db:"blood_pressure"`
	Glucose       *float64  `json:"glucose,omitempty" db:"glucose"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// ID returns the record's composite identity.
func (r *TrackingRecord) ID() string {
	return r.Username + "-" + r.Date
}

// TrackingRequest represents a measurement submission
type TrackingRequest struct {
	Date          string   `json:"date" binding:"required,datetime=2006-01-02"`
	Weight        float64  `json:"weight" binding:"required,gt=0"`
	Chest         *float64 `json:"chest" binding:"omitempty,gt=0"`
	Waist         *float64 `json:"waist" binding:"omitempty,gt=0"`
	BloodPressure *string  `json:"blood_pressure" binding:"omitempty,bloodpressure"`
	Glucose       *float64 `json:"glucose" binding:"omitempty,gt=0"`
}

// TrackingFilter narrows a history listing to one calendar month.
type TrackingFilter struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}
