package models

import "time"

// GameStats holds the folded counters for one (game, player) pair. A row
// exists only while the pair has at least one ledger entry. Points, total
// rebounds and percentages are derived, never stored.
type GameStats struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	GameID               uint      `json:"game_id" gorm:"not null;uniqueIndex:idx_game_stats_pair"`
	PlayerID             uint      `json:"player_id" gorm:"not null;uniqueIndex:idx_game_stats_pair"`
	FreeThrowsMade       int       `json:"free_throws_made" gorm:"not null;default:0"`
	FreeThrowsAttempted  int       `json:"free_throws_attempted" gorm:"not null;default:0"`
	TwoPointsMade        int       `json:"two_points_made" gorm:"not null;default:0"`
	TwoPointsAttempted   int       `json:"two_points_attempted" gorm:"not null;default:0"`
	ThreePointsMade      int       `json:"three_points_made" gorm:"not null;default:0"`
	ThreePointsAttempted int       `json:"three_points_attempted" gorm:"not null;default:0"`
	OffensiveRebounds    int       `json:"offensive_rebounds" gorm:"not null;default:0"`
	DefensiveRebounds    int       `json:"defensive_rebounds" gorm:"not null;default:0"`
	Assists              int       `json:"assists" gorm:"not null;default:0"`
	Steals               int       `json:"steals" gorm:"not null;default:0"`
	Blocks               int       `json:"blocks" gorm:"not null;default:0"`
	Turnovers            int       `json:"turnovers" gorm:"not null;default:0"`
	PersonalFouls        int       `json:"personal_fouls" gorm:"not null;default:0"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Points derives the score contribution: free throws are worth one,
// two-pointers two, three-pointers three.
func (s *GameStats) Points() int {
	return s.FreeThrowsMade + 2*s.TwoPointsMade + 3*s.ThreePointsMade
}

func (s *GameStats) TotalRebounds() int {
	return s.OffensiveRebounds + s.DefensiveRebounds
}

// ShootingPercentage returns made/attempted as a percentage, 0 when nothing
// was attempted.
func ShootingPercentage(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(made) / float64(attempted) * 100
}
