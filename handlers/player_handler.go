package handlers

import (
	"net/http"

	"courtside/services"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
}

func NewPlayerHandler(playerService *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.CreatePlayer(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

func (h *PlayerHandler) GetTeamPlayers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	teamID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	players, err := h.playerService.GetTeamPlayers(teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

func (h *PlayerHandler) GetPlayerByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayerByID(playerID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.UpdatePlayer(playerID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playerID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(playerID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
