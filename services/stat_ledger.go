package services

import "courtside/models"

// shotActions are the action types that carry a made/missed outcome and
// affect two counters (attempted always, made conditionally).
var shotActions = map[string]bool{
	models.ActionFreeThrow:  true,
	models.ActionTwoPoint:   true,
	models.ActionThreePoint: true,
}

var countActions = map[string]bool{
	models.ActionOffensiveRebound: true,
	models.ActionDefensiveRebound: true,
	models.ActionAssist:           true,
	models.ActionSteal:            true,
	models.ActionBlock:            true,
	models.ActionTurnover:         true,
	models.ActionPersonalFoul:     true,
}

func isShotAction(actionType string) bool {
	return shotActions[actionType]
}

func isStatAction(actionType string) bool {
	return shotActions[actionType] || countActions[actionType]
}

// applyStatEvent folds one ledger entry into the counters.
func applyStatEvent(stats *models.GameStats, event models.StatEvent) {
	foldStatEvent(stats, event, 1)
}

// reverseStatEvent undoes exactly the effect of applyStatEvent for the same
// entry. Reversing the logged event, rather than guessing a counter to
// decrement, is what keeps undo correct for shots that touched both the made
// and attempted counters.
func reverseStatEvent(stats *models.GameStats, event models.StatEvent) {
	foldStatEvent(stats, event, -1)
}

func foldStatEvent(stats *models.GameStats, event models.StatEvent, delta int) {
	switch event.Type {
	case models.ActionFreeThrow:
		stats.FreeThrowsAttempted += delta
		if event.Made {
			stats.FreeThrowsMade += delta
		}
	case models.ActionTwoPoint:
		stats.TwoPointsAttempted += delta
		if event.Made {
			stats.TwoPointsMade += delta
		}
	case models.ActionThreePoint:
		stats.ThreePointsAttempted += delta
		if event.Made {
			stats.ThreePointsMade += delta
		}
	case models.ActionOffensiveRebound:
		stats.OffensiveRebounds += delta
	case models.ActionDefensiveRebound:
		stats.DefensiveRebounds += delta
	case models.ActionAssist:
		stats.Assists += delta
	case models.ActionSteal:
		stats.Steals += delta
	case models.ActionBlock:
		stats.Blocks += delta
	case models.ActionTurnover:
		stats.Turnovers += delta
	case models.ActionPersonalFoul:
		stats.PersonalFouls += delta
	}
}
