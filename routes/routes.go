package routes

import (
	"net/http"

	"courtside/handlers"
	"courtside/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	gameHandler *handlers.GameHandler,
	statsHandler *handlers.StatsHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// User profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Team routes
			teams := protected.Group("/teams")
			{
				teams.GET("", teamHandler.GetUserTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeamByID)
				teams.PUT("/:id", teamHandler.UpdateTeam)
				teams.DELETE("/:id", teamHandler.DeleteTeam)
				teams.GET("/:id/players", playerHandler.GetTeamPlayers)
				teams.GET("/:id/games", gameHandler.ListTeamGames)
			}

			// Player routes
			players := protected.Group("/players")
			{
				players.POST("", playerHandler.CreatePlayer)
				players.GET("/:id", playerHandler.GetPlayerByID)
				players.PUT("/:id", playerHandler.UpdatePlayer)
				players.DELETE("/:id", playerHandler.DeletePlayer)
				players.GET("/:id/career", statsHandler.CareerStats)
			}

			// Game routes: CRUD plus the live-game operations
			games := protected.Group("/games")
			{
				games.POST("", gameHandler.CreateGame)
				games.GET("/:id", gameHandler.GetGame)
				games.PUT("/:id", gameHandler.UpdateGame)
				games.DELETE("/:id", gameHandler.DeleteGame)

				games.PUT("/:id/roster", gameHandler.SetRoster)
				games.PUT("/:id/lineup", gameHandler.SetStartingLineup)
				games.POST("/:id/start", gameHandler.StartGame)
				games.POST("/:id/quarter", gameHandler.NextQuarter)
				games.POST("/:id/substitutions", gameHandler.RecordSubstitution)
				games.GET("/:id/substitutions", gameHandler.ListSubstitutions)
				games.POST("/:id/complete", gameHandler.CompleteGame)
				games.GET("/:id/live", gameHandler.LiveGame)

				games.GET("/:id/stats", statsHandler.GameSummary)
				games.POST("/:id/players/:playerId/stats", statsHandler.RecordAction)
				games.DELETE("/:id/players/:playerId/stats", statsHandler.UndoLastAction)
				games.GET("/:id/players/:playerId/stats", statsHandler.GetStats)
			}
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
