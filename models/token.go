package models

import "time"

// AuthToken maps an opaque bearer key to a user. One token per user,
// issued at registration and reused on login.
type AuthToken struct {
	Key       string    `gorm:"size:64;primaryKey" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
