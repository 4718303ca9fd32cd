package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Coach     string         `json:"coach,omitempty"`
	Season    string         `json:"season,omitempty"`
	League    string         `json:"league,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
	Games   []Game   `json:"games,omitempty" gorm:"foreignKey:TeamID"`
}
