package services

import (
	"testing"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(actionType string, made bool) models.StatEvent {
	return models.StatEvent{GameID: 1, PlayerID: 2, Type: actionType, Made: made}
}

func TestApplyStatEventShots(t *testing.T) {
	cases := []struct {
		name          string
		event         models.StatEvent
		wantMade      int
		wantAttempted int
		wantPoints    int
	}{
		{"made free throw", event(models.ActionFreeThrow, true), 1, 1, 1},
		{"missed free throw", event(models.ActionFreeThrow, false), 0, 1, 0},
		{"made two", event(models.ActionTwoPoint, true), 1, 1, 2},
		{"missed two", event(models.ActionTwoPoint, false), 0, 1, 0},
		{"made three", event(models.ActionThreePoint, true), 1, 1, 3},
		{"missed three", event(models.ActionThreePoint, false), 0, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stats models.GameStats
			applyStatEvent(&stats, tc.event)

			made, attempted := shotCounters(&stats, tc.event.Type)
			assert.Equal(t, tc.wantMade, made)
			assert.Equal(t, tc.wantAttempted, attempted)
			assert.Equal(t, tc.wantPoints, stats.Points())
		})
	}
}

func shotCounters(stats *models.GameStats, actionType string) (made, attempted int) {
	switch actionType {
	case models.ActionFreeThrow:
		return stats.FreeThrowsMade, stats.FreeThrowsAttempted
	case models.ActionTwoPoint:
		return stats.TwoPointsMade, stats.TwoPointsAttempted
	case models.ActionThreePoint:
		return stats.ThreePointsMade, stats.ThreePointsAttempted
	}
	return 0, 0
}

func TestApplyStatEventCounts(t *testing.T) {
	var stats models.GameStats
	for _, actionType := range []string{
		models.ActionOffensiveRebound,
		models.ActionDefensiveRebound,
		models.ActionAssist,
		models.ActionSteal,
		models.ActionBlock,
		models.ActionTurnover,
		models.ActionPersonalFoul,
	} {
		applyStatEvent(&stats, event(actionType, false))
	}

	assert.Equal(t, 1, stats.OffensiveRebounds)
	assert.Equal(t, 1, stats.DefensiveRebounds)
	assert.Equal(t, 2, stats.TotalRebounds())
	assert.Equal(t, 1, stats.Assists)
	assert.Equal(t, 1, stats.Steals)
	assert.Equal(t, 1, stats.Blocks)
	assert.Equal(t, 1, stats.Turnovers)
	assert.Equal(t, 1, stats.PersonalFouls)
	assert.Equal(t, 0, stats.Points())
}

// Reversing the last logged event must restore the exact counters from before
// it was applied, whatever came before it.
func TestReverseIsExactInverse(t *testing.T) {
	sequence := []models.StatEvent{
		event(models.ActionFreeThrow, true),
		event(models.ActionFreeThrow, false),
		event(models.ActionTwoPoint, true),
		event(models.ActionThreePoint, false),
		event(models.ActionOffensiveRebound, false),
		event(models.ActionAssist, false),
		event(models.ActionTurnover, false),
	}

	var stats models.GameStats
	for _, e := range sequence {
		before := stats
		applyStatEvent(&stats, e)
		reversed := stats
		reverseStatEvent(&reversed, e)
		assert.Equal(t, before, reversed, "reversing %s made=%v", e.Type, e.Made)
	}
}

func TestFreeThrowRecordUndoScenario(t *testing.T) {
	var stats models.GameStats
	applyStatEvent(&stats, event(models.ActionFreeThrow, true))
	applyStatEvent(&stats, event(models.ActionFreeThrow, false))
	require.Equal(t, 1, stats.FreeThrowsMade)
	require.Equal(t, 2, stats.FreeThrowsAttempted)

	// Undo the miss: made stays, attempted drops.
	reverseStatEvent(&stats, event(models.ActionFreeThrow, false))
	assert.Equal(t, 1, stats.FreeThrowsMade)
	assert.Equal(t, 1, stats.FreeThrowsAttempted)
}

func TestPointsFormula(t *testing.T) {
	stats := models.GameStats{
		FreeThrowsMade:  3,
		TwoPointsMade:   4,
		ThreePointsMade: 2,
	}
	assert.Equal(t, 3+2*4+3*2, stats.Points())
}

func TestShootingPercentageZeroAttempts(t *testing.T) {
	assert.Equal(t, 0.0, models.ShootingPercentage(0, 0))

	box := emptyBoxScore(1, 2)
	assert.Equal(t, 0.0, box.FreeThrowPercentage)
	assert.Equal(t, 0.0, box.TwoPointPercentage)
	assert.Equal(t, 0.0, box.ThreePointPercentage)
	assert.Equal(t, 0, box.Points)
}

func TestShootingPercentage(t *testing.T) {
	assert.InDelta(t, 50.0, models.ShootingPercentage(1, 2), 1e-9)
	assert.InDelta(t, 100.0/3.0, models.ShootingPercentage(1, 3), 1e-9)
}

func TestActionTypeSets(t *testing.T) {
	for _, shot := range []string{models.ActionFreeThrow, models.ActionTwoPoint, models.ActionThreePoint} {
		assert.True(t, isShotAction(shot))
		assert.True(t, isStatAction(shot))
	}
	assert.False(t, isShotAction(models.ActionAssist))
	assert.True(t, isStatAction(models.ActionPersonalFoul))
	assert.False(t, isStatAction("technical_foul"))
}

func TestBoxScoreDerivedFields(t *testing.T) {
	stats := models.GameStats{
		GameID:               1,
		PlayerID:             2,
		FreeThrowsMade:       2,
		FreeThrowsAttempted:  4,
		TwoPointsMade:        3,
		TwoPointsAttempted:   6,
		ThreePointsMade:      1,
		ThreePointsAttempted: 5,
		OffensiveRebounds:    2,
		DefensiveRebounds:    5,
	}
	box := newBoxScore(&stats)

	assert.Equal(t, 2+6+3, box.Points)
	assert.Equal(t, 7, box.TotalRebounds)
	assert.InDelta(t, 50.0, box.FreeThrowPercentage, 1e-9)
	assert.InDelta(t, 50.0, box.TwoPointPercentage, 1e-9)
	assert.InDelta(t, 20.0, box.ThreePointPercentage, 1e-9)
}
