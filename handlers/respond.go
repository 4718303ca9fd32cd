package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"courtside/services"

	"github.com/gin-gonic/gin"
)

// statusForError maps a service error kind to an HTTP status. Services only
// return the enumerated kinds for validation failures, so anything else is a
// server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrQuarterLimitReached),
		errors.Is(err, services.ErrNoActionToUndo),
		errors.Is(err, services.ErrInUse):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidRosterSize),
		errors.Is(err, services.ErrInvalidLineupSize),
		errors.Is(err, services.ErrPlayerNotOnRoster),
		errors.Is(err, services.ErrPlayerNotOnCourt),
		errors.Is(err, services.ErrPlayerNotEligible),
		errors.Is(err, services.ErrInvalidAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID.(uint), true
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(value), true
}
