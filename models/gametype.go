package models

// GameType is a category label applied to games.
type GameType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:50;not null" json:"label"`
}
