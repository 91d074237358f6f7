package scores

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryHighScore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	t.Run("no entries is not found, not zero", func(t *testing.T) {
		_, err := store.HighScore(ctx, "user-1")
		assert.ErrorIs(t, err, ErrNoScores)
	})

	t.Run("returns the maximum", func(t *testing.T) {
		for _, score := range []int{3, 7, 5} {
			require.NoError(t, store.Append(ctx, "user-1", score))
		}

		high, err := store.HighScore(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 7, high)
	})

	t.Run("a max of zero is still found", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, "user-2", 0))

		high, err := store.HighScore(ctx, "user-2")
		require.NoError(t, err)
		assert.Equal(t, 0, high)
	})
}

func TestInMemoryPastScores(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(nil)

	t.Run("no entries is not found", func(t *testing.T) {
		_, err := store.PastScores(ctx, "user-1")
		assert.ErrorIs(t, err, ErrNoScores)
	})

	t.Run("newest first, capped at the limit", func(t *testing.T) {
		for i := 0; i < PastScoreLimit+5; i++ {
			require.NoError(t, store.Append(ctx, "user-1", i))
		}
		require.NoError(t, store.Append(ctx, "user-2", 99))

		entries, err := store.PastScores(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, entries, PastScoreLimit)

		// Newest entry carries the highest appended value
		assert.Equal(t, PastScoreLimit+4, entries[0].Score)
		for i := 1; i < len(entries); i++ {
			assert.Equal(t, entries[i-1].Score-1, entries[i].Score)
		}
	})
}

func TestInMemoryLeaderboard(t *testing.T) {
	ctx := context.Background()

	usernames := map[string]string{
		"user-1": "alice",
		"user-2": "bob",
	}
	resolver := func(userID string) (string, bool) {
		name, ok := usernames[userID]
		return name, ok
	}

	store := NewInMemoryStore(resolver)

	t.Run("empty ledger yields an empty board", func(t *testing.T) {
		rows, err := store.Leaderboard(ctx)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("max per user, descending, inner-join semantics", func(t *testing.T) {
		for _, score := range []int{3, 7, 5} {
			require.NoError(t, store.Append(ctx, "user-1", score))
		}
		require.NoError(t, store.Append(ctx, "user-2", 4))

		// Unresolvable users never appear
		require.NoError(t, store.Append(ctx, "ghost", 100))

		rows, err := store.Leaderboard(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, LeaderboardRow{Username: "alice", HighScore: 7}, rows[0])
		assert.Equal(t, LeaderboardRow{Username: "bob", HighScore: 4}, rows[1])
	})
}

func TestFormatDisplayTime(t *testing.T) {
	// 18:30 UTC is midnight in the +05:30 display offset
	stamp := time.Date(2024, time.March, 1, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "02/03/2024 00:00:00", FormatDisplayTime(stamp))
}
