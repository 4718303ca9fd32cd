package services

import (
	"errors"
	"fmt"

	"courtside/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StatsService struct {
	db          *gorm.DB
	gameService *GameService
	log         *zap.SugaredLogger
}

func NewStatsService(db *gorm.DB, gameService *GameService, log *zap.SugaredLogger) *StatsService {
	return &StatsService{
		db:          db,
		gameService: gameService,
		log:         log,
	}
}

type RecordActionRequest struct {
	Type string `json:"type" binding:"required"`
	Made *bool  `json:"made"`
}

// RecordAction appends one ledger entry for the (game, player) pair and folds
// it into the stat line, returning the updated box score. The game must be in
// progress and the player on its roster.
func (s *StatsService) RecordAction(userID, gameID, playerID uint, req *RecordActionRequest) (*BoxScore, error) {
	if !isStatAction(req.Type) {
		return nil, fmt.Errorf("%q: %w", req.Type, ErrInvalidAction)
	}
	if isShotAction(req.Type) && req.Made == nil {
		return nil, fmt.Errorf("shot action %q requires made: %w", req.Type, ErrInvalidAction)
	}

	var box BoxScore
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.gameService.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusInProgress {
			return ErrInvalidState
		}
		if !containsID(game.Roster, playerID) {
			return ErrPlayerNotOnRoster
		}

		event := models.StatEvent{
			GameID:   gameID,
			PlayerID: playerID,
			Type:     req.Type,
		}
		if isShotAction(req.Type) {
			event.Made = *req.Made
		}
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		stats, err := s.getOrInitStats(tx, gameID, playerID)
		if err != nil {
			return err
		}
		applyStatEvent(stats, event)
		if err := tx.Save(stats).Error; err != nil {
			return err
		}

		box = newBoxScore(stats)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.refreshLiveSnapshot(userID, gameID)
	return &box, nil
}

// UndoLastAction removes the newest ledger entry for the pair and reverses
// exactly its effect. When the log empties, the stat line is deleted and the
// zero box score is returned.
func (s *StatsService) UndoLastAction(userID, gameID, playerID uint) (*BoxScore, error) {
	var box BoxScore
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.gameService.getOwnedGame(tx, userID, gameID); err != nil {
			return err
		}

		var event models.StatEvent
		err := tx.Where("game_id = ? AND player_id = ?", gameID, playerID).
			Order("id DESC").
			First(&event).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActionToUndo
			}
			return err
		}
		if err := tx.Delete(&event).Error; err != nil {
			return err
		}

		var stats models.GameStats
		if err := tx.Where("game_id = ? AND player_id = ?", gameID, playerID).
			First(&stats).Error; err != nil {
			return err
		}
		reverseStatEvent(&stats, event)

		var remaining int64
		if err := tx.Model(&models.StatEvent{}).
			Where("game_id = ? AND player_id = ?", gameID, playerID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			if err := tx.Delete(&stats).Error; err != nil {
				return err
			}
			box = emptyBoxScore(gameID, playerID)
			return nil
		}

		if err := tx.Save(&stats).Error; err != nil {
			return err
		}
		box = newBoxScore(&stats)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.refreshLiveSnapshot(userID, gameID)
	return &box, nil
}

// GetStats is a pure read; a pair with no recorded actions gets the zero box
// score rather than an error.
func (s *StatsService) GetStats(userID, gameID, playerID uint) (*BoxScore, error) {
	if _, err := s.gameService.getOwnedGame(s.db, userID, gameID); err != nil {
		return nil, err
	}

	var stats models.GameStats
	err := s.db.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			box := emptyBoxScore(gameID, playerID)
			return &box, nil
		}
		return nil, err
	}
	box := newBoxScore(&stats)
	return &box, nil
}

// GameSummary folds every player's box score for the game plus team totals.
func (s *StatsService) GameSummary(userID, gameID uint) (*GameSummary, error) {
	game, err := s.gameService.getOwnedGame(s.db, userID, gameID)
	if err != nil {
		return nil, err
	}

	var statLines []models.GameStats
	if err := s.db.Where("game_id = ?", gameID).Order("player_id").Find(&statLines).Error; err != nil {
		return nil, err
	}

	summary := &GameSummary{
		GameID:   game.ID,
		Status:   game.Status,
		Opponent: game.Opponent,
		Players:  []BoxScore{},
	}
	for i := range statLines {
		box := newBoxScore(&statLines[i])
		summary.TeamPoints += box.Points
		summary.Players = append(summary.Players, box)
	}
	return summary, nil
}

// CareerStats aggregates a player's stat lines across completed games.
func (s *StatsService) CareerStats(userID, playerID uint) (*CareerStats, error) {
	var player models.Player
	if err := s.db.First(&player, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.gameService.checkTeamOwnership(s.db, player.TeamID, userID); err != nil {
		return nil, err
	}

	var statLines []models.GameStats
	err := s.db.
		Joins("JOIN games ON games.id = game_stats.game_id").
		Where("game_stats.player_id = ? AND games.status = ?", playerID, models.GameStatusCompleted).
		Find(&statLines).Error
	if err != nil {
		return nil, err
	}

	career := computeCareerStats(playerID, statLines)
	return &career, nil
}

func (s *StatsService) getOrInitStats(tx *gorm.DB, gameID, playerID uint) (*models.GameStats, error) {
	var stats models.GameStats
	err := tx.Where("game_id = ? AND player_id = ?", gameID, playerID).First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	stats = models.GameStats{GameID: gameID, PlayerID: playerID}
	if err := tx.Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *StatsService) refreshLiveSnapshot(userID, gameID uint) {
	game, err := s.gameService.getOwnedGame(s.db, userID, gameID)
	if err != nil {
		s.log.Warnw("failed to reload game for live snapshot", "game_id", gameID, "error", err)
		return
	}
	s.gameService.refreshLiveGame(game)
}
