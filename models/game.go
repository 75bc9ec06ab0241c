package models

import "time"

// Game is a game registered by a gamer and classified by a GameType.
// Deleting the GameType or the Gamer deletes the game.
type Game struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:40;not null" json:"title"`
	Maker           string    `gorm:"size:25;not null" json:"maker"`
	NumberOfPlayers int       `json:"number_of_players"`
	SkillLevel      int       `json:"skill_level"`
	GameTypeID      uint      `gorm:"not null" json:"-"`
	GameType        GameType  `gorm:"constraint:OnDelete:CASCADE" json:"game_type"`
	GamerID         uint      `gorm:"not null" json:"-"`
	Gamer           Gamer     `gorm:"constraint:OnDelete:CASCADE" json:"gamer"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}
