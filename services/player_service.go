package services

import (
	"errors"
	"fmt"

	"courtside/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{db: db}
}

type CreatePlayerRequest struct {
	TeamID    uint   `json:"team_id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Nickname  string `json:"nickname"`
	Position  string `json:"position"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Grade     string `json:"grade"`
}

// UpdatePlayerRequest has no team_id: a player cannot move teams.
type UpdatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Nickname  string `json:"nickname"`
	Position  string `json:"position"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Grade     string `json:"grade"`
}

func (s *PlayerService) CreatePlayer(userID uint, req *CreatePlayerRequest) (*models.Player, error) {
	if err := s.checkTeamOwnership(req.TeamID, userID); err != nil {
		return nil, err
	}

	player := models.Player{
		TeamID:    req.TeamID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Nickname:  req.Nickname,
		Position:  req.Position,
		Height:    req.Height,
		Weight:    req.Weight,
		Age:       req.Age,
		Gender:    req.Gender,
		Grade:     req.Grade,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) GetTeamPlayers(teamID, userID uint) ([]models.Player, error) {
	if err := s.checkTeamOwnership(teamID, userID); err != nil {
		return nil, err
	}

	var players []models.Player
	err := s.db.Where("team_id = ?", teamID).Order("last_name, first_name").Find(&players).Error
	return players, err
}

func (s *PlayerService) GetPlayerByID(playerID, userID uint) (*models.Player, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.checkTeamOwnership(player.TeamID, userID); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerService) UpdatePlayer(playerID, userID uint, req *UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.GetPlayerByID(playerID, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		player.FirstName = req.FirstName
	}
	if req.LastName != "" {
		player.LastName = req.LastName
	}
	if req.Nickname != "" {
		player.Nickname = req.Nickname
	}
	if req.Position != "" {
		player.Position = req.Position
	}
	if req.Height != "" {
		player.Height = req.Height
	}
	if req.Weight != "" {
		player.Weight = req.Weight
	}
	if req.Age != 0 {
		player.Age = req.Age
	}
	if req.Gender != "" {
		player.Gender = req.Gender
	}
	if req.Grade != "" {
		player.Grade = req.Grade
	}
	if err := s.db.Save(player).Error; err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer is blocked while the player appears on any game roster or has
// recorded stats.
func (s *PlayerService) DeletePlayer(playerID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("player %d: %w", playerID, ErrNotFound)
			}
			return err
		}
		if err := s.checkTeamOwnership(player.TeamID, userID); err != nil {
			return err
		}

		var rostered int64
		if err := tx.Model(&models.Game{}).
			Where("team_id = ? AND roster @> ?::jsonb", player.TeamID, fmt.Sprintf("[%d]", playerID)).
			Count(&rostered).Error; err != nil {
			return err
		}
		if rostered > 0 {
			return fmt.Errorf("player %d is on a game roster: %w", playerID, ErrInUse)
		}

		var statLines int64
		if err := tx.Model(&models.GameStats{}).Where("player_id = ?", playerID).Count(&statLines).Error; err != nil {
			return err
		}
		if statLines > 0 {
			return fmt.Errorf("player %d has recorded stats: %w", playerID, ErrInUse)
		}

		return tx.Delete(&player).Error
	})
}

func (s *PlayerService) checkTeamOwnership(teamID, userID uint) error {
	var team models.Team
	if err := s.db.Where("id = ? AND user_id = ?", teamID, userID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		}
		return err
	}
	return nil
}
