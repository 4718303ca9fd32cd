package services

import (
	"time"

	"courtside/models"
)

// Roster and lineup bounds.
const (
	rosterMin  = 5
	rosterMax  = 15
	lineupSize = 5
	maxQuarter = 4
)

// The functions below are the live-game rules. Each one validates against the
// game it is given and only mutates it after every check has passed, so a
// failed call leaves the game untouched. Callers are expected to pass the
// freshest persisted copy and save the result in the same transaction.

func setRoster(game *models.Game, playerIDs []uint) error {
	if game.Status != models.GameStatusNotStarted {
		return ErrInvalidState
	}
	if len(playerIDs) < rosterMin || len(playerIDs) > rosterMax {
		return ErrInvalidRosterSize
	}
	if hasDuplicates(playerIDs) {
		return ErrInvalidRosterSize
	}
	game.Roster = append([]uint(nil), playerIDs...)
	// A new roster invalidates any lineup picked from the old one.
	game.StartingLineup = nil
	game.CurrentLineup = nil
	return nil
}

func setStartingLineup(game *models.Game, playerIDs []uint) error {
	if game.Status != models.GameStatusNotStarted {
		return ErrInvalidState
	}
	if len(playerIDs) != lineupSize || hasDuplicates(playerIDs) {
		return ErrInvalidLineupSize
	}
	for _, id := range playerIDs {
		if !containsID(game.Roster, id) {
			return ErrPlayerNotOnRoster
		}
	}
	game.StartingLineup = append([]uint(nil), playerIDs...)
	game.CurrentLineup = append([]uint(nil), playerIDs...)
	return nil
}

func startGame(game *models.Game, now time.Time) error {
	if game.Status != models.GameStatusNotStarted {
		return ErrInvalidState
	}
	if len(game.StartingLineup) != lineupSize {
		return ErrInvalidState
	}
	game.Status = models.GameStatusInProgress
	game.StartedAt = &now
	game.CurrentQuarter = 1
	return nil
}

func advanceQuarter(game *models.Game) error {
	if game.Status != models.GameStatusInProgress {
		return ErrInvalidState
	}
	if game.CurrentQuarter >= maxQuarter {
		return ErrQuarterLimitReached
	}
	game.CurrentQuarter++
	return nil
}

// applySubstitution swaps playerOut for playerIn on the current lineup. The
// caller writes the audit record in the same transaction so the swap and the
// record succeed or fail together.
func applySubstitution(game *models.Game, playerOut, playerIn uint) error {
	if game.Status != models.GameStatusInProgress {
		return ErrInvalidState
	}
	if playerOut == playerIn {
		return ErrPlayerNotEligible
	}
	if !containsID(game.CurrentLineup, playerOut) {
		return ErrPlayerNotOnCourt
	}
	if !containsID(game.Roster, playerIn) || containsID(game.CurrentLineup, playerIn) {
		return ErrPlayerNotEligible
	}
	lineup := make([]uint, 0, len(game.CurrentLineup))
	for _, id := range game.CurrentLineup {
		if id == playerOut {
			lineup = append(lineup, playerIn)
		} else {
			lineup = append(lineup, id)
		}
	}
	game.CurrentLineup = lineup
	return nil
}

func completeGame(game *models.Game, now time.Time) error {
	if game.Status != models.GameStatusInProgress {
		return ErrInvalidState
	}
	game.Status = models.GameStatusCompleted
	game.CompletedAt = &now
	return nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func hasDuplicates(ids []uint) bool {
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}
