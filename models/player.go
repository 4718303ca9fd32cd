package models

import (
	"time"

	"gorm.io/gorm"
)

// Player belongs to exactly one team; TeamID is fixed at creation, there is
// no reassignment operation.
type Player struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	TeamID    uint           `json:"team_id" gorm:"not null;index"`
	FirstName string         `json:"first_name" gorm:"not null"`
	LastName  string         `json:"last_name" gorm:"not null"`
	Nickname  string         `json:"nickname,omitempty"`
	Position  string         `json:"position,omitempty"`
	Height    string         `json:"height,omitempty"`
	Weight    string         `json:"weight,omitempty"`
	Age       int            `json:"age,omitempty"`
	Gender    string         `json:"gender,omitempty"`
	Grade     string         `json:"grade,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Team Team `json:"team,omitempty"`
}
