package users_module

import (
	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/internal/auth"
)

// Register routes for the users module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/users")

	group.POST("/register", Register) // Register a new user
	group.POST("/login", Login)       // Log in a user

	// Protected profile route
	g.GET("/profile", auth.Middleware(GetTokenService()), Profile)
}
