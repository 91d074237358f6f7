package factgame_module

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guessquest/guessquest/internal/factgame"
	"github.com/guessquest/guessquest/internal/stores/scores"
	"github.com/guessquest/guessquest/pkg/llm"
	"github.com/guessquest/guessquest/pkg/sdk"
)

// StartFactRound handles POST requests to begin a new fact-or-fiction round
func StartFactRound(c *gin.Context) {
	// Parse request body
	var req sdk.StartRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if strings.TrimSpace(req.Category) == "" || req.UserID == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "category and userId are required", nil).AsGinResponse())
		return
	}

	result, err := GetService().StartRound(c.Request.Context(), req.UserID, req.Category)
	if err != nil {
		// The provider's output format is not guaranteed, so both transport
		// and extraction failures surface as a bad gateway
		if errors.Is(err, llm.ErrProvider) || errors.Is(err, factgame.ErrExtraction) {
			c.JSON(sdk.NewErrorResponse(http.StatusBadGateway, "Completion provider error", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to start round", err).AsGinResponse())
		return
	}

	resp := sdk.StartRoundResponse{
		RoundID:    result.RoundID,
		Category:   result.Category,
		Statements: toSDKStatements(result.Statements),
	}

	c.JSON(sdk.NewSuccessResponse("Round started", resp).AsGinResponse())
}

// ValidateFactGuess handles POST requests to score a player's guess
func ValidateFactGuess(c *gin.Context) {
	// Parse request body
	var req sdk.ValidateGuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if req.UserID == "" || req.Guess == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "userId and guess are required", nil).AsGinResponse())
		return
	}

	var result factgame.GuessResult
	var err error

	if req.RoundID != "" {
		result, err = GetService().ValidateGuess(c.Request.Context(), req.UserID, req.RoundID, req.Guess)
	} else {
		// Legacy contract: the client echoes the correct answer and a
		// proposed score
		if req.CorrectAnswer == "" || req.Score == nil || *req.Score <= 0 {
			c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "correctAnswer and a positive score are required without a roundId", nil).AsGinResponse())
			return
		}
		result, err = GetService().ValidateClientGuess(c.Request.Context(), req.UserID, req.Guess, req.CorrectAnswer, *req.Score)
	}

	if err != nil {
		if errors.Is(err, factgame.ErrRoundNotFound) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "Round not found", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to validate guess", err).AsGinResponse())
		return
	}

	message := "Incorrect."
	if result.Correct {
		message = "Correct!"
	}

	c.JSON(sdk.NewSuccessResponse(message, sdk.ValidateGuessResponse{
		IsCorrect: result.Correct,
		Score:     result.Score,
	}).AsGinResponse())
}

// SaveFinalScore handles POST requests to record a finished game's score
func SaveFinalScore(c *gin.Context) {
	// Parse request body
	var req sdk.SaveFinalScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	if req.UserID == "" || req.FinalScore == nil || *req.FinalScore < 0 {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "userId and a non-negative finalScore are required", nil).AsGinResponse())
		return
	}

	if err := GetService().SaveFinalScore(c.Request.Context(), req.UserID, *req.FinalScore); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to save final score", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccess("Final score saved").AsGinResponse())
}

// GetHighScore handles GET requests for a user's maximum recorded score
func GetHighScore(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "User ID is required", nil).AsGinResponse())
		return
	}

	high, err := GetLedger().HighScore(c.Request.Context(), userID)
	if err != nil {
		// A user with no entries is a 404, never {highScore: 0}
		if errors.Is(err, scores.ErrNoScores) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "No scores found for this user", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to query high score", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("High score retrieved", sdk.HighScoreResponse{HighScore: high}).AsGinResponse())
}

// GetPastScores handles GET requests for a user's recent score history
func GetPastScores(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "User ID is required", nil).AsGinResponse())
		return
	}

	entries, err := GetLedger().PastScores(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, scores.ErrNoScores) {
			c.JSON(sdk.NewErrorResponse(http.StatusNotFound, "No past scores found for this user", err).AsGinResponse())
			return
		}
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to query past scores", err).AsGinResponse())
		return
	}

	resp := sdk.PastScoresResponse{}
	for _, entry := range entries {
		resp.PastScores = append(resp.PastScores, sdk.PastScore{
			Score: entry.Score,
			Date:  scores.FormatDisplayTime(entry.CreatedAt),
		})
	}

	c.JSON(sdk.NewSuccessResponse("Past scores retrieved", resp).AsGinResponse())
}

// GetLeaderboard handles GET requests for the global top-ten high scores
func GetLeaderboard(c *gin.Context) {
	rows, err := GetLedger().Leaderboard(c.Request.Context())
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, "Failed to query leaderboard", err).AsGinResponse())
		return
	}

	entries := make([]sdk.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, sdk.LeaderboardEntry{
			Username:  row.Username,
			HighScore: row.HighScore,
		})
	}

	c.JSON(sdk.NewSuccessResponse("Leaderboard retrieved", entries).AsGinResponse())
}

// Helper method to convert internal statements to sdk statements
func toSDKStatements(statements []factgame.Statement) []sdk.Statement {
	out := make([]sdk.Statement, 0, len(statements))
	for _, s := range statements {
		out = append(out, sdk.Statement{Text: s.Text, Label: s.Label})
	}
	return out
}
