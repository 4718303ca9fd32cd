package services

import "courtside/models"

// BoxScore is the response shape for one (game, player) stat line: the raw
// counters plus the derived fields the client never computes itself.
type BoxScore struct {
	GameID               uint    `json:"game_id"`
	PlayerID             uint    `json:"player_id"`
	FreeThrowsMade       int     `json:"free_throws_made"`
	FreeThrowsAttempted  int     `json:"free_throws_attempted"`
	TwoPointsMade        int     `json:"two_points_made"`
	TwoPointsAttempted   int     `json:"two_points_attempted"`
	ThreePointsMade      int     `json:"three_points_made"`
	ThreePointsAttempted int     `json:"three_points_attempted"`
	OffensiveRebounds    int     `json:"offensive_rebounds"`
	DefensiveRebounds    int     `json:"defensive_rebounds"`
	Assists              int     `json:"assists"`
	Steals               int     `json:"steals"`
	Blocks               int     `json:"blocks"`
	Turnovers            int     `json:"turnovers"`
	PersonalFouls        int     `json:"personal_fouls"`
	Points               int     `json:"points"`
	TotalRebounds        int     `json:"total_rebounds"`
	FreeThrowPercentage  float64 `json:"free_throw_percentage"`
	TwoPointPercentage   float64 `json:"two_point_percentage"`
	ThreePointPercentage float64 `json:"three_point_percentage"`
}

func newBoxScore(stats *models.GameStats) BoxScore {
	return BoxScore{
		GameID:               stats.GameID,
		PlayerID:             stats.PlayerID,
		FreeThrowsMade:       stats.FreeThrowsMade,
		FreeThrowsAttempted:  stats.FreeThrowsAttempted,
		TwoPointsMade:        stats.TwoPointsMade,
		TwoPointsAttempted:   stats.TwoPointsAttempted,
		ThreePointsMade:      stats.ThreePointsMade,
		ThreePointsAttempted: stats.ThreePointsAttempted,
		OffensiveRebounds:    stats.OffensiveRebounds,
		DefensiveRebounds:    stats.DefensiveRebounds,
		Assists:              stats.Assists,
		Steals:               stats.Steals,
		Blocks:               stats.Blocks,
		Turnovers:            stats.Turnovers,
		PersonalFouls:        stats.PersonalFouls,
		Points:               stats.Points(),
		TotalRebounds:        stats.TotalRebounds(),
		FreeThrowPercentage:  models.ShootingPercentage(stats.FreeThrowsMade, stats.FreeThrowsAttempted),
		TwoPointPercentage:   models.ShootingPercentage(stats.TwoPointsMade, stats.TwoPointsAttempted),
		ThreePointPercentage: models.ShootingPercentage(stats.ThreePointsMade, stats.ThreePointsAttempted),
	}
}

// emptyBoxScore is the well-defined zero result for a pair with no recorded
// actions, and the snapshot returned when undo empties the log.
func emptyBoxScore(gameID, playerID uint) BoxScore {
	return newBoxScore(&models.GameStats{GameID: gameID, PlayerID: playerID})
}

// GameSummary is the per-game aggregate view: every player's box score plus
// team totals folded from them.
type GameSummary struct {
	GameID     uint       `json:"game_id"`
	Status     string     `json:"status"`
	Opponent   string     `json:"opponent"`
	TeamPoints int        `json:"team_points"`
	Players    []BoxScore `json:"players"`
}

// LiveGame is the snapshot served from the redis cache while a game is in
// progress. The database stays the source of truth; this is rebuilt from it
// on every mutation and on cache miss.
type LiveGame struct {
	GameID         uint       `json:"game_id"`
	Status         string     `json:"status"`
	Opponent       string     `json:"opponent"`
	CurrentQuarter int        `json:"current_quarter"`
	CurrentLineup  []uint     `json:"current_lineup"`
	TeamPoints     int        `json:"team_points"`
	BoxScores      []BoxScore `json:"box_scores"`
}

// CareerStats aggregates a player's box scores across completed games. Kept
// at full precision; rounding is the client's concern.
type CareerStats struct {
	PlayerID             uint    `json:"player_id"`
	GamesPlayed          int     `json:"games_played"`
	TotalPoints          int     `json:"total_points"`
	TotalRebounds        int     `json:"total_rebounds"`
	TotalAssists         int     `json:"total_assists"`
	TotalSteals          int     `json:"total_steals"`
	TotalBlocks          int     `json:"total_blocks"`
	PointsPerGame        float64 `json:"points_per_game"`
	ReboundsPerGame      float64 `json:"rebounds_per_game"`
	AssistsPerGame       float64 `json:"assists_per_game"`
	FreeThrowPercentage  float64 `json:"free_throw_percentage"`
	TwoPointPercentage   float64 `json:"two_point_percentage"`
	ThreePointPercentage float64 `json:"three_point_percentage"`
}
