package models

import "time"

// Substitution is an append-only audit record. Rows are never updated or
// deleted once written.
type Substitution struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	GameID      uint      `json:"game_id" gorm:"not null;index"`
	Quarter     int       `json:"quarter" gorm:"not null"`
	PlayerOutID uint      `json:"player_out_id" gorm:"not null"`
	PlayerInID  uint      `json:"player_in_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
