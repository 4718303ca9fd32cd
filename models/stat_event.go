package models

import "time"

// Stat action types. The three shot types carry a made flag; the rest are
// simple counts.
const (
	ActionFreeThrow         = "free_throw"
	ActionTwoPoint          = "two_point"
	ActionThreePoint        = "three_point"
	ActionOffensiveRebound  = "offensive_rebound"
	ActionDefensiveRebound  = "defensive_rebound"
	ActionAssist            = "assist"
	ActionSteal             = "steal"
	ActionBlock             = "block"
	ActionTurnover          = "turnover"
	ActionPersonalFoul      = "personal_foul"
)

// StatEvent is one entry in the per-(game, player) stat ledger. Undo deletes
// the newest row for a pair; nothing else ever mutates the log.
type StatEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	GameID    uint      `json:"game_id" gorm:"not null;index:idx_stat_events_pair"`
	PlayerID  uint      `json:"player_id" gorm:"not null;index:idx_stat_events_pair"`
	Type      string    `json:"type" gorm:"not null"`
	Made      bool      `json:"made"`
	CreatedAt time.Time `json:"created_at"`
}
