package services

import (
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeCareerStatsEmpty(t *testing.T) {
	career := computeCareerStats(7, nil)

	assert.Equal(t, uint(7), career.PlayerID)
	assert.Equal(t, 0, career.GamesPlayed)
	assert.Equal(t, 0.0, career.PointsPerGame)
	assert.Equal(t, 0.0, career.ReboundsPerGame)
	assert.Equal(t, 0.0, career.AssistsPerGame)
	assert.Equal(t, 0.0, career.FreeThrowPercentage)
}

func TestComputeCareerStatsTotalsAndAverages(t *testing.T) {
	lines := []models.GameStats{
		{
			GameID: 1, PlayerID: 7,
			FreeThrowsMade: 2, FreeThrowsAttempted: 2,
			TwoPointsMade: 5, TwoPointsAttempted: 10,
			ThreePointsMade: 1, ThreePointsAttempted: 4,
			OffensiveRebounds: 3, DefensiveRebounds: 4,
			Assists: 6, Steals: 1, Blocks: 2,
		},
		{
			GameID: 2, PlayerID: 7,
			FreeThrowsMade: 0, FreeThrowsAttempted: 2,
			TwoPointsMade: 3, TwoPointsAttempted: 4,
			ThreePointsMade: 2, ThreePointsAttempted: 6,
			OffensiveRebounds: 1, DefensiveRebounds: 2,
			Assists: 2, Steals: 3, Blocks: 0,
		},
	}

	career := computeCareerStats(7, lines)

	// Game 1: 2 + 10 + 3 = 15 points; game 2: 0 + 6 + 6 = 12.
	assert.Equal(t, 2, career.GamesPlayed)
	assert.Equal(t, 27, career.TotalPoints)
	assert.Equal(t, 10, career.TotalRebounds)
	assert.Equal(t, 8, career.TotalAssists)
	assert.Equal(t, 4, career.TotalSteals)
	assert.Equal(t, 2, career.TotalBlocks)
	assert.InDelta(t, 13.5, career.PointsPerGame, 1e-9)
	assert.InDelta(t, 5.0, career.ReboundsPerGame, 1e-9)
	assert.InDelta(t, 4.0, career.AssistsPerGame, 1e-9)
}

// Percentages come from summed made over summed attempted, not from averaging
// the per-game percentages.
func TestComputeCareerStatsPercentagesFromSums(t *testing.T) {
	lines := []models.GameStats{
		{TwoPointsMade: 1, TwoPointsAttempted: 1},   // 100% on 1 attempt
		{TwoPointsMade: 1, TwoPointsAttempted: 9},   // 11.1% on 9 attempts
	}

	career := computeCareerStats(7, lines)

	// 2 of 10, not (100 + 11.1) / 2.
	assert.InDelta(t, 20.0, career.TwoPointPercentage, 1e-9)
	assert.Equal(t, 0.0, career.FreeThrowPercentage)
	assert.Equal(t, 0.0, career.ThreePointPercentage)
}

// The aggregator keeps full precision; any one-decimal rounding is for the
// presentation layer.
func TestComputeCareerStatsFullPrecision(t *testing.T) {
	lines := []models.GameStats{
		{TwoPointsMade: 1, TwoPointsAttempted: 3},
		{TwoPointsMade: 0, TwoPointsAttempted: 0},
		{TwoPointsMade: 0, TwoPointsAttempted: 0},
	}

	career := computeCareerStats(7, lines)
	assert.InDelta(t, 100.0/3.0, career.TwoPointPercentage, 1e-9)
	assert.InDelta(t, 2.0/3.0, career.PointsPerGame, 1e-9)
}
