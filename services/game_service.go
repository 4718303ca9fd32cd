package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"courtside/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const liveGameTTL = 6 * time.Hour

type GameService struct {
	db    *gorm.DB
	redis *redis.Client
	log   *zap.SugaredLogger
}

func NewGameService(db *gorm.DB, redisClient *redis.Client, log *zap.SugaredLogger) *GameService {
	return &GameService{
		db:    db,
		redis: redisClient,
		log:   log,
	}
}

type CreateGameRequest struct {
	TeamID   uint       `json:"team_id" binding:"required"`
	Opponent string     `json:"opponent" binding:"required"`
	Date     *time.Time `json:"date"`
	Location string     `json:"location"`
	Notes    string     `json:"notes"`
}

type UpdateGameRequest struct {
	Opponent string     `json:"opponent"`
	Date     *time.Time `json:"date"`
	Location string     `json:"location"`
	Notes    *string    `json:"notes"`
}

type RosterRequest struct {
	PlayerIDs []uint `json:"player_ids" binding:"required"`
}

type LineupRequest struct {
	PlayerIDs []uint `json:"player_ids" binding:"required"`
}

type SubstitutionRequest struct {
	PlayerOutID uint `json:"player_out_id" binding:"required"`
	PlayerInID  uint `json:"player_in_id" binding:"required"`
}

func (s *GameService) CreateGame(userID uint, req *CreateGameRequest) (*models.Game, error) {
	if err := s.checkTeamOwnership(s.db, req.TeamID, userID); err != nil {
		return nil, err
	}

	game := models.Game{
		TeamID:   req.TeamID,
		Opponent: req.Opponent,
		Date:     req.Date,
		Location: req.Location,
		Notes:    req.Notes,
		Status:   models.GameStatusNotStarted,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) GetGame(userID, gameID uint) (*models.Game, error) {
	return s.getOwnedGame(s.db, userID, gameID)
}

// ListGames returns a team's games, optionally filtered by status. The
// client's "all games" view is a single unfiltered query.
func (s *GameService) ListGames(userID, teamID uint, status string) ([]models.Game, error) {
	if err := s.checkTeamOwnership(s.db, teamID, userID); err != nil {
		return nil, err
	}

	query := s.db.Where("team_id = ?", teamID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var games []models.Game
	if err := query.Order("created_at DESC").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *GameService) UpdateGame(userID, gameID uint, req *UpdateGameRequest) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}

		// Scheduling details are frozen once the game starts; notes stay
		// editable so the bench can annotate in-progress and finished games.
		detailEdit := req.Opponent != "" || req.Date != nil || req.Location != ""
		if detailEdit && game.Status != models.GameStatusNotStarted {
			return ErrInvalidState
		}
		if req.Opponent != "" {
			game.Opponent = req.Opponent
		}
		if req.Date != nil {
			game.Date = req.Date
		}
		if req.Location != "" {
			game.Location = req.Location
		}
		if req.Notes != nil {
			game.Notes = *req.Notes
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) DeleteGame(userID, gameID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusNotStarted {
			return ErrInvalidState
		}
		return tx.Delete(&models.Game{}, game.ID).Error
	})
}

// SetRoster replaces the game roster. Every id must resolve to a player on
// the game's team.
func (s *GameService) SetRoster(userID, gameID uint, req *RosterRequest) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := setRoster(game, req.PlayerIDs); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Player{}).
			Where("team_id = ? AND id IN ?", game.TeamID, req.PlayerIDs).
			Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(req.PlayerIDs)) {
			return fmt.Errorf("roster references players outside the team: %w", ErrNotFound)
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) SetStartingLineup(userID, gameID uint, req *LineupRequest) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := setStartingLineup(game, req.PlayerIDs); err != nil {
			return err
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) StartGame(userID, gameID uint) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := startGame(game, time.Now()); err != nil {
			return err
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	s.refreshLiveGame(game)
	return game, nil
}

func (s *GameService) NextQuarter(userID, gameID uint) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := advanceQuarter(game); err != nil {
			return err
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	s.refreshLiveGame(game)
	return game, nil
}

// RecordSubstitution swaps the players on the current lineup and appends the
// audit record in one transaction, so a failure leaves neither behind.
func (s *GameService) RecordSubstitution(userID, gameID uint, req *SubstitutionRequest) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := applySubstitution(game, req.PlayerOutID, req.PlayerInID); err != nil {
			return err
		}

		sub := models.Substitution{
			GameID:      game.ID,
			Quarter:     game.CurrentQuarter,
			PlayerOutID: req.PlayerOutID,
			PlayerInID:  req.PlayerInID,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	s.refreshLiveGame(game)
	return game, nil
}

func (s *GameService) CompleteGame(userID, gameID uint) (*models.Game, error) {
	var game *models.Game
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		game, err = s.getOwnedGame(tx, userID, gameID)
		if err != nil {
			return err
		}
		if err := completeGame(game, time.Now()); err != nil {
			return err
		}
		return tx.Save(game).Error
	})
	if err != nil {
		return nil, err
	}
	s.dropLiveGame(gameID)
	return game, nil
}

func (s *GameService) ListSubstitutions(userID, gameID uint) ([]models.Substitution, error) {
	if _, err := s.getOwnedGame(s.db, userID, gameID); err != nil {
		return nil, err
	}

	var subs []models.Substitution
	err := s.db.Where("game_id = ?", gameID).Order("id").Find(&subs).Error
	return subs, err
}

// LiveGame serves the in-progress snapshot from redis, rebuilding it from the
// database on a miss. The cache is never consulted for validation.
func (s *GameService) LiveGame(userID, gameID uint) (*LiveGame, error) {
	game, err := s.getOwnedGame(s.db, userID, gameID)
	if err != nil {
		return nil, err
	}

	if cached := s.getLiveGame(gameID); cached != nil && cached.Status == game.Status {
		return cached, nil
	}
	return s.refreshLiveGame(game), nil
}

func (s *GameService) buildLiveGame(game *models.Game) *LiveGame {
	live := &LiveGame{
		GameID:         game.ID,
		Status:         game.Status,
		Opponent:       game.Opponent,
		CurrentQuarter: game.CurrentQuarter,
		CurrentLineup:  game.CurrentLineup,
		BoxScores:      []BoxScore{},
	}

	var statLines []models.GameStats
	if err := s.db.Where("game_id = ?", game.ID).Order("player_id").Find(&statLines).Error; err != nil {
		s.log.Errorw("failed to load stats for live snapshot", "game_id", game.ID, "error", err)
		return live
	}
	for i := range statLines {
		box := newBoxScore(&statLines[i])
		live.TeamPoints += box.Points
		live.BoxScores = append(live.BoxScores, box)
	}
	return live
}

// refreshLiveGame rebuilds the snapshot and stores it best-effort; a cache
// write failure never fails the operation that triggered it.
func (s *GameService) refreshLiveGame(game *models.Game) *LiveGame {
	live := s.buildLiveGame(game)

	data, err := json.Marshal(live)
	if err != nil {
		s.log.Errorw("failed to marshal live snapshot", "game_id", game.ID, "error", err)
		return live
	}
	if err := s.redis.Set(context.Background(), liveGameKey(game.ID), data, liveGameTTL).Err(); err != nil {
		s.log.Warnw("failed to cache live snapshot", "game_id", game.ID, "error", err)
	}
	return live
}

func (s *GameService) getLiveGame(gameID uint) *LiveGame {
	data, err := s.redis.Get(context.Background(), liveGameKey(gameID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnw("redis error reading live snapshot", "game_id", gameID, "error", err)
		}
		return nil
	}

	var live LiveGame
	if err := json.Unmarshal([]byte(data), &live); err != nil {
		s.log.Warnw("failed to unmarshal live snapshot", "game_id", gameID, "error", err)
		return nil
	}
	return &live
}

func (s *GameService) dropLiveGame(gameID uint) {
	if err := s.redis.Del(context.Background(), liveGameKey(gameID)).Err(); err != nil {
		s.log.Warnw("failed to drop live snapshot", "game_id", gameID, "error", err)
	}
}

func liveGameKey(gameID uint) string {
	return fmt.Sprintf("game:%d", gameID)
}

// getOwnedGame fetches the freshest persisted game and verifies the caller
// owns its team. State-machine operations call this inside their transaction
// so preconditions are always checked against the latest write.
func (s *GameService) getOwnedGame(tx *gorm.DB, userID, gameID uint) (*models.Game, error) {
	var game models.Game
	if err := tx.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game %d: %w", gameID, ErrNotFound)
		}
		return nil, err
	}
	if err := s.checkTeamOwnership(tx, game.TeamID, userID); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *GameService) checkTeamOwnership(tx *gorm.DB, teamID, userID uint) error {
	var team models.Team
	if err := tx.Where("id = ? AND user_id = ?", teamID, userID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		}
		return err
	}
	return nil
}
