package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/pkg/sdk"
	"github.com/guessquest/guessquest/pkg/utils"

	factgame_module "github.com/guessquest/guessquest/internal/api/modules/factgame"
	game_module "github.com/guessquest/guessquest/internal/api/modules/game"
	health_module "github.com/guessquest/guessquest/internal/api/modules/health"
	users_module "github.com/guessquest/guessquest/internal/api/modules/users"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "8080")

	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(noRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)

	// The users module owns the token service, so it initializes first and
	// the game modules reuse it for their protected routes
	users_module.Init(cfg)
	users_module.RegisterRoutes(baseGroup)

	game_module.Init(cfg)
	game_module.RegisterRoutes(baseGroup, users_module.GetTokenService())

	factgame_module.Init(cfg)
	factgame_module.RegisterRoutes(baseGroup)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// noRouteHandler reports unknown paths in the standard envelope
func noRouteHandler(c *gin.Context) {
	c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Route not found", nil).AsGinResponse())
}
