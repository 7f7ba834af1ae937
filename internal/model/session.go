package model

import "time"

// Session binds an issued token to its owner. A row exists exactly as long as the
// token is considered valid; Expiry is stored independently of the token's own
// expiry claim.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey;size:512"`
	Email     string    `json:"email" gorm:"size:255;not null;index"`
	Expiry    time.Time `json:"expiry" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
