package model

import "time"

// EmptyFieldSentinel is stored in place of a blank free-text field.
const EmptyFieldSentinel = "-"

// HealthProfile holds the free-text medical background for one account.
// One profile per account, created lazily on first save and fully
// replaced on every subsequent save.
type HealthProfile struct {
	Username        string    `json:"username" db:"username"`
	ChronicDiseases string    `json:"chronic_diseases" db:"chronic_diseases"`
	SurgeryHistory  string    `json:"surgery_history" db:"surgery_history"`
	DrugAllergies   string    `json:"drug_allergies" db:"drug_allergies"`
	FoodAllergies   string    `json:"food_allergies" db:"food_allergies"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// SaveHealthProfileRequest represents a full-replace profile save
type SaveHealthProfileRequest struct {
	ChronicDiseases string `json:"chronic_diseases"`
	SurgeryHistory  string `json:"surgery_history"`
	DrugAllergies   string `json:"drug_allergies"`
	FoodAllergies   string `json:"food_allergies"`
}
