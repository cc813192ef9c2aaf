package model

import "time"

// ProfileImage is the account's avatar, stored as a data URI and
// replaced wholesale on re-upload.
type ProfileImage struct {
	Username  string    `json:"username" db:"username"`
	Image     string    `json:"image" db:"image"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SaveProfileImageRequest represents an avatar upload
type SaveProfileImageRequest struct {
	Image string `json:"image" binding:"required,datauri"`
}
