package sdk_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	factgame_module "github.com/guessquest/guessquest/internal/api/modules/factgame"
	users_module "github.com/guessquest/guessquest/internal/api/modules/users"
	"github.com/guessquest/guessquest/internal/auth"
	"github.com/guessquest/guessquest/internal/factgame"
	"github.com/guessquest/guessquest/internal/stores/scores"
	"github.com/guessquest/guessquest/internal/stores/users"
	"github.com/guessquest/guessquest/pkg/sdk"
)

// stubProvider returns a canned completion
type stubProvider struct {
	completion string
}

func (s *stubProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return s.completion, nil
}

const marsCompletion = "Fact: Mars has two moons.\nFiction: Mars has three moons."

// setupServer runs the users and factgame modules against in-memory stores
// behind a real HTTP listener so the client is exercised end to end
func setupServer(t *testing.T) (*httptest.Server, *users.InMemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userStore := users.NewInMemoryStore()
	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	users_module.InitWithDeps(userStore, tokens)

	ledger := scores.NewInMemoryStore(func(userID string) (string, bool) {
		user, err := userStore.FindByID(context.Background(), userID)
		if err != nil {
			return "", false
		}
		return user.Username, true
	})
	service := factgame.NewService(&stubProvider{completion: marsCompletion}, ledger)
	t.Cleanup(service.Close)
	factgame_module.InitWithDeps(service, ledger)

	engine := gin.New()
	base := engine.Group("/api")
	users_module.RegisterRoutes(base)
	factgame_module.RegisterRoutes(base)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server, userStore
}

func TestClientRoundTrip(t *testing.T) {
	server, userStore := setupServer(t)
	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.Register(ctx, "alice", "hunter2"))

	token, err := client.Login(ctx, "alice", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := userStore.FindByUsername(ctx, "alice")
	require.NoError(t, err)

	round, err := client.StartFactRound(ctx, user.ID, "Space")
	require.NoError(t, err)
	assert.NotEmpty(t, round.RoundID)
	require.Len(t, round.Statements, 2)

	var fact string
	for _, s := range round.Statements {
		if s.Label == factgame.LabelFact {
			fact = s.Text
		}
	}
	require.NotEmpty(t, fact)

	guess, err := client.ValidateFactGuess(ctx, user.ID, round.RoundID, fact)
	require.NoError(t, err)
	assert.True(t, guess.IsCorrect)
	assert.Equal(t, factgame.DefaultRoundScore, guess.Score)

	require.NoError(t, client.SaveFinalScore(ctx, user.ID, 40))

	high, err := client.HighScore(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, high)

	past, err := client.PastScores(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, 40, past[0].Score)

	board, err := client.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 1)
	assert.Equal(t, "alice", board[0].Username)
	assert.Equal(t, 40, board[0].HighScore)
}

func TestClientErrorResponses(t *testing.T) {
	server, _ := setupServer(t)
	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	t.Run("login with bad credentials", func(t *testing.T) {
		_, err := client.Login(ctx, "nobody", "wrong")
		assert.ErrorContains(t, err, "401")
	})

	t.Run("high score for an unknown user", func(t *testing.T) {
		_, err := client.HighScore(ctx, "no-such-user")
		assert.ErrorContains(t, err, "404")
	})
}
