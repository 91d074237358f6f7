package game_module

import (
	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/internal/auth"
)

// Register routes for the image game module. Both routes require a valid
// bearer token.
func RegisterRoutes(g *gin.RouterGroup, tokens *auth.TokenService) {
	group := g.Group("/game")
	group.Use(auth.Middleware(tokens))

	group.GET("/random-image", GetRandomImage)    // Get a random image to guess
	group.POST("/validate-answer", ValidateAnswer) // Validate the user's answer
}
