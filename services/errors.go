package services

import "errors"

// Error kinds returned by the services. Handlers branch on these with
// errors.Is to pick a response status; services never return a bare generic
// failure for a validation problem.
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidState        = errors.New("operation not allowed in current game status")
	ErrInvalidRosterSize   = errors.New("roster must have between 5 and 15 players")
	ErrInvalidLineupSize   = errors.New("lineup must have exactly 5 players")
	ErrPlayerNotOnRoster   = errors.New("player is not on the game roster")
	ErrPlayerNotOnCourt    = errors.New("player is not on the court")
	ErrPlayerNotEligible   = errors.New("player is not eligible to enter the game")
	ErrQuarterLimitReached = errors.New("game is already in the final quarter")
	ErrNoActionToUndo      = errors.New("no recorded action to undo")
	ErrInUse               = errors.New("cannot delete while dependent records exist")
	ErrInvalidAction       = errors.New("unknown stat action type")
)
