package factgame_module

import "github.com/gin-gonic/gin"

// Register routes for the fact game module
func RegisterRoutes(g *gin.RouterGroup) {
	group := g.Group("/factgame")

	group.POST("/start-fact-round", StartFactRound)        // Start new fact game round based on category
	group.POST("/validate-fact-guess", ValidateFactGuess)  // Validate fact game guess
	group.POST("/save-final-score", SaveFinalScore)        // Save the score of a finished game
	group.GET("/fact-high-score/:userId", GetHighScore)    // Get high score for fact game
	group.GET("/fact-past-scores/:userId", GetPastScores)  // Get past scores for fact game
	group.GET("/leaderboard", GetLeaderboard)              // Get global top scores
}
