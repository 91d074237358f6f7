package sdk

/** User requests/responses */

// RegisterRequest represents the request body for registering a new user
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed bearer token for a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// ProfileResponse echoes the authenticated user's identity
type ProfileResponse struct {
	UserID string `json:"userId"`
}

/** Fact game requests/responses */

// Statement is one half of a fact/fiction pair as presented to the player.
// Label is the ground-truth tag ("fact" or "fiction") attached before
// shuffling.
type Statement struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// StartRoundRequest represents the request body for starting a fact round
type StartRoundRequest struct {
	Category string `json:"category"`
	UserID   string `json:"userId"`
}

// StartRoundResponse carries the shuffled statement pair for a new round
type StartRoundResponse struct {
	RoundID    string      `json:"roundId"`
	Category   string      `json:"category"`
	Statements []Statement `json:"statements"`
}

// ValidateGuessRequest represents the request body for validating a guess.
// RoundID selects server-side validation against the stored round; when it
// is absent the legacy contract applies and CorrectAnswer plus Score are
// required.
type ValidateGuessRequest struct {
	UserID        string `json:"userId"`
	Guess         string `json:"guess"`
	RoundID       string `json:"roundId,omitempty"`
	CorrectAnswer string `json:"correctAnswer,omitempty"`
	Score         *int   `json:"score,omitempty"`
}

// ValidateGuessResponse reports the outcome of a guess
type ValidateGuessResponse struct {
	IsCorrect bool `json:"isCorrect"`
	Score     int  `json:"score"`
}

// SaveFinalScoreRequest represents the request body for saving a final score
type SaveFinalScoreRequest struct {
	UserID     string `json:"userId"`
	FinalScore *int   `json:"finalScore"`
}

// HighScoreResponse carries a user's maximum recorded score
type HighScoreResponse struct {
	HighScore int `json:"highScore"`
}

// PastScore is one historical score entry with a display-formatted date
type PastScore struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// PastScoresResponse carries a user's most recent score entries, newest first
type PastScoresResponse struct {
	PastScores []PastScore `json:"pastScores"`
}

// LeaderboardEntry is one row of the global leaderboard
type LeaderboardEntry struct {
	Username  string `json:"username"`
	HighScore int    `json:"high_score"`
}

/** Image game requests/responses */

// RandomImageResponse carries one image for the guessing game
type RandomImageResponse struct {
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}

// ValidateAnswerRequest represents the request body for checking an image guess
type ValidateAnswerRequest struct {
	ImageID    string `json:"imageId"`
	UserAnswer string `json:"userAnswer"`
}

// ValidateAnswerResponse reports whether the image guess was right
type ValidateAnswerResponse struct {
	IsCorrect bool `json:"isCorrect"`
}
