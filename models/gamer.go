package models

import "time"

// Gamer is the application-facing player, one per User.
type Gamer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Bio       string    `gorm:"size:255" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
