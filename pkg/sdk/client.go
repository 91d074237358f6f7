package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps calls to the trivia backend
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// WithToken sets the bearer token used on protected routes
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, read body and return error
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

// Register creates a new user account
func (c *Client) Register(ctx context.Context, username, password string) error {
	req := RegisterRequest{Username: username, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/api/users/register", req, nil)
}

// Login authenticates a user and stores the returned bearer token on the client
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	req := LoginRequest{Username: username, Password: password}

	var out ApiResponse[LoginResponse]
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", req, &out); err != nil {
		return "", err
	}
	if out.Data.Token == "" {
		return "", fmt.Errorf("no token returned")
	}

	c.token = out.Data.Token
	return out.Data.Token, nil
}

// StartFactRound begins a new fact-or-fiction round for the given category
func (c *Client) StartFactRound(ctx context.Context, userID, category string) (*StartRoundResponse, error) {
	req := StartRoundRequest{UserID: userID, Category: category}

	var out ApiResponse[StartRoundResponse]
	if err := c.doJSON(ctx, http.MethodPost, "/api/factgame/start-fact-round", req, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// ValidateFactGuess submits a guess for a round by ID
func (c *Client) ValidateFactGuess(ctx context.Context, userID, roundID, guess string) (*ValidateGuessResponse, error) {
	req := ValidateGuessRequest{UserID: userID, RoundID: roundID, Guess: guess}

	var out ApiResponse[ValidateGuessResponse]
	if err := c.doJSON(ctx, http.MethodPost, "/api/factgame/validate-fact-guess", req, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// SaveFinalScore records the score of a finished game
func (c *Client) SaveFinalScore(ctx context.Context, userID string, finalScore int) error {
	req := SaveFinalScoreRequest{UserID: userID, FinalScore: &finalScore}
	return c.doJSON(ctx, http.MethodPost, "/api/factgame/save-final-score", req, nil)
}

// HighScore fetches a user's maximum recorded score
func (c *Client) HighScore(ctx context.Context, userID string) (int, error) {
	path := fmt.Sprintf("/api/factgame/fact-high-score/%s", url.PathEscape(userID))

	var out ApiResponse[HighScoreResponse]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}

	return out.Data.HighScore, nil
}

// PastScores fetches a user's ten most recent score entries, newest first
func (c *Client) PastScores(ctx context.Context, userID string) ([]PastScore, error) {
	path := fmt.Sprintf("/api/factgame/fact-past-scores/%s", url.PathEscape(userID))

	var out ApiResponse[PastScoresResponse]
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out.Data.PastScores, nil
}

// Leaderboard fetches the global top-ten high scores
func (c *Client) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	var out ApiResponse[[]LeaderboardEntry]
	if err := c.doJSON(ctx, http.MethodGet, "/api/factgame/leaderboard", nil, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}
