package scores

import (
	"context"
	"sort"
	"sync"
	"time"
)

// UsernameResolver maps a user ID to a display name. The in-memory
// leaderboard uses it in place of the SQL join; unresolvable users are
// dropped, matching inner-join semantics.
type UsernameResolver func(userID string) (string, bool)

// InMemoryStore is an in-memory ledger used in tests and one-off runs
type InMemoryStore struct {
	mu       sync.RWMutex
	entries  []ScoreEntry
	nextID   uint
	resolver UsernameResolver
}

// NewInMemoryStore creates an empty in-memory ledger. The resolver may be nil
// when the leaderboard is not needed.
func NewInMemoryStore(resolver UsernameResolver) *InMemoryStore {
	return &InMemoryStore{
		nextID:   1,
		resolver: resolver,
	}
}

// Append records one scored attempt for a user
func (s *InMemoryStore) Append(ctx context.Context, userID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, ScoreEntry{
		ID:        s.nextID,
		UserID:    userID,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	})
	s.nextID++

	return nil
}

// HighScore returns the maximum recorded score for a user, or ErrNoScores
func (s *InMemoryStore) HighScore(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	high, found := 0, false
	for _, entry := range s.entries {
		if entry.UserID != userID {
			continue
		}
		if !found || entry.Score > high {
			high = entry.Score
		}
		found = true
	}

	if !found {
		return 0, ErrNoScores
	}
	return high, nil
}

// PastScores returns a user's most recent entries, newest first
func (s *InMemoryStore) PastScores(ctx context.Context, userID string) ([]ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []ScoreEntry
	for i := len(s.entries) - 1; i >= 0 && len(entries) < PastScoreLimit; i-- {
		if s.entries[i].UserID == userID {
			entries = append(entries, s.entries[i])
		}
	}

	if len(entries) == 0 {
		return nil, ErrNoScores
	}
	return entries, nil
}

// Leaderboard returns each resolvable user's best score, descending
func (s *InMemoryStore) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := make(map[string]int)
	for _, entry := range s.entries {
		if high, ok := best[entry.UserID]; !ok || entry.Score > high {
			best[entry.UserID] = entry.Score
		}
	}

	var rows []LeaderboardRow
	for userID, high := range best {
		if s.resolver == nil {
			continue
		}
		username, ok := s.resolver(userID)
		if !ok {
			continue
		}
		rows = append(rows, LeaderboardRow{Username: username, HighScore: high})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].HighScore != rows[j].HighScore {
			return rows[i].HighScore > rows[j].HighScore
		}
		return rows[i].Username < rows[j].Username
	})

	if len(rows) > LeaderboardLimit {
		rows = rows[:LeaderboardLimit]
	}

	return rows, nil
}
