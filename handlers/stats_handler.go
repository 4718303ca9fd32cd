package handlers

import (
	"net/http"

	"courtside/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) RecordAction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "playerId")
	if !ok {
		return
	}

	var req services.RecordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	box, err := h.statsService.RecordAction(userID, gameID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

func (h *StatsHandler) UndoLastAction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "playerId")
	if !ok {
		return
	}

	box, err := h.statsService.UndoLastAction(userID, gameID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "playerId")
	if !ok {
		return
	}

	box, err := h.statsService.GetStats(userID, gameID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

func (h *StatsHandler) GameSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.statsService.GameSummary(userID, gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *StatsHandler) CareerStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	career, err := h.statsService.CareerStats(userID, playerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, career)
}
