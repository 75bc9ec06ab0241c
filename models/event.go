package models

import "time"

// Event is a scheduled session of a Game. Date and Time are stored as
// ISO strings (YYYY-MM-DD, HH:MM:SS) and validated at the handler.
// Attendees is the many-to-many sign-up relation; the join table's
// composite primary key keeps a (event, gamer) pair unique.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:40;not null" json:"description"`
	Date        string    `gorm:"size:10;not null" json:"date"`
	Time        string    `gorm:"size:8;not null" json:"time"`
	GameID      uint      `gorm:"not null" json:"game_id"`
	Game        Game      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OrganizerID uint      `gorm:"not null" json:"organizer_id"`
	Organizer   Gamer     `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"-"`
	Attendees   []Gamer   `gorm:"many2many:event_attendees;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
