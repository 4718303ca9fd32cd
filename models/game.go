package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Game statuses. Transitions are monotonic: not_started -> in_progress ->
// completed. There is no way back out of completed.
const (
	GameStatusNotStarted = "not_started"
	GameStatusInProgress = "in_progress"
	GameStatusCompleted  = "completed"
)

type Game struct {
	ID             uint                      `json:"id" gorm:"primaryKey"`
	TeamID         uint                      `json:"team_id" gorm:"not null;index"`
	Opponent       string                    `json:"opponent" gorm:"not null"`
	Date           *time.Time                `json:"date,omitempty"`
	Location       string                    `json:"location,omitempty"`
	Notes          string                    `json:"notes,omitempty"`
	Status         string                    `json:"status" gorm:"not null;default:'not_started'"`
	Roster         datatypes.JSONSlice[uint] `json:"roster" gorm:"type:jsonb"`
	StartingLineup datatypes.JSONSlice[uint] `json:"starting_lineup" gorm:"type:jsonb"`
	CurrentLineup  datatypes.JSONSlice[uint] `json:"current_lineup" gorm:"type:jsonb"`
	CurrentQuarter int                       `json:"current_quarter" gorm:"not null;default:0"`
	StartedAt      *time.Time                `json:"started_at,omitempty"`
	CompletedAt    *time.Time                `json:"completed_at,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
	DeletedAt      gorm.DeletedAt            `json:"-" gorm:"index"`

	// Relationships
	Team          Team           `json:"team,omitempty"`
	Substitutions []Substitution `json:"substitutions,omitempty" gorm:"foreignKey:GameID"`
}
