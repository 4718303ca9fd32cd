package main

import (
	"courtside/config"
	"courtside/handlers"
	"courtside/logger"
	"courtside/middleware"
	"courtside/models"
	"courtside/routes"
	"courtside/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Player{},
		&models.Game{},
		&models.Substitution{},
		&models.StatEvent{},
		&models.GameStats{},
	)
	if err != nil {
		log.Fatalw("failed to migrate database", "error", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	teamService := services.NewTeamService(db)
	playerService := services.NewPlayerService(db)
	gameService := services.NewGameService(db, redisClient, log)
	statsService := services.NewStatsService(db, gameService, log)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	gameHandler := handlers.NewGameHandler(gameService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Setup routes
	routes.SetupRoutes(router, authHandler, teamHandler, playerHandler, gameHandler, statsHandler, cfg.JWTSecret)

	// Start server
	log.Infow("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}
}
