package services

import (
	"errors"
	"fmt"

	"courtside/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type CreateTeamRequest struct {
	Name   string `json:"name" binding:"required"`
	Coach  string `json:"coach"`
	Season string `json:"season"`
	League string `json:"league"`
}

type UpdateTeamRequest struct {
	Name   string `json:"name"`
	Coach  string `json:"coach"`
	Season string `json:"season"`
	League string `json:"league"`
}

func (s *TeamService) CreateTeam(userID uint, req *CreateTeamRequest) (*models.Team, error) {
	team := models.Team{
		UserID: userID,
		Name:   req.Name,
		Coach:  req.Coach,
		Season: req.Season,
		League: req.League,
	}
	if err := s.db.Create(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) GetUserTeams(userID uint) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&teams).Error
	return teams, err
}

func (s *TeamService) GetTeamByID(teamID, userID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ? AND user_id = ?", teamID, userID).
		Preload("Players").
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		}
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) UpdateTeam(teamID, userID uint, req *UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeamByID(teamID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.Coach != "" {
		team.Coach = req.Coach
	}
	if req.Season != "" {
		team.Season = req.Season
	}
	if req.League != "" {
		team.League = req.League
	}
	if err := s.db.Save(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// DeleteTeam is blocked while the team still has players or games.
func (s *TeamService) DeleteTeam(teamID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.Where("id = ? AND user_id = ?", teamID, userID).First(&team).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("team %d: %w", teamID, ErrNotFound)
			}
			return err
		}

		var players int64
		if err := tx.Model(&models.Player{}).Where("team_id = ?", teamID).Count(&players).Error; err != nil {
			return err
		}
		if players > 0 {
			return fmt.Errorf("team %d still has players: %w", teamID, ErrInUse)
		}

		var games int64
		if err := tx.Model(&models.Game{}).Where("team_id = ?", teamID).Count(&games).Error; err != nil {
			return err
		}
		if games > 0 {
			return fmt.Errorf("team %d still has games: %w", teamID, ErrInUse)
		}

		return tx.Delete(&team).Error
	})
}
