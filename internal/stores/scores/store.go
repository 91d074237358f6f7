package scores

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// PastScoreLimit is how many historical entries a user can page back through
const PastScoreLimit = 10

// LeaderboardLimit is how many users appear on the global leaderboard
const LeaderboardLimit = 10

// ErrNoScores reports a user with no ledger entries. It is distinct from a
// recorded maximum of zero.
var ErrNoScores = errors.New("no scores found for this user")

// Store interface defines methods for the score ledger
type Store interface {
	Append(ctx context.Context, userID string, score int) error
	HighScore(ctx context.Context, userID string) (int, error)
	PastScores(ctx context.Context, userID string) ([]ScoreEntry, error)
	Leaderboard(ctx context.Context) ([]LeaderboardRow, error)
}

// MySqlStore handles ledger persistence using GORM
type MySqlStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new ledger store with GORM connection
func NewMySqlStore(databaseURL string) (*MySqlStore, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate tables
	if err := db.AutoMigrate(&ScoreEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate scores table: %w", err)
	}

	return &MySqlStore{db: db}, nil
}

// Close closes the database connection
func (s *MySqlStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}

// Append records one scored attempt for a user
func (s *MySqlStore) Append(ctx context.Context, userID string, score int) error {
	entry := &ScoreEntry{UserID: userID, Score: score}

	result := s.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to append score entry: %w", result.Error)
	}

	return nil
}

// HighScore returns the maximum recorded score for a user, or ErrNoScores
// if the user has no entries at all
func (s *MySqlStore) HighScore(ctx context.Context, userID string) (int, error) {
	var high *int
	result := s.db.WithContext(ctx).Model(&ScoreEntry{}).
		Select("MAX(score)").
		Where("user_id = ?", userID).
		Scan(&high)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to query high score: %w", result.Error)
	}
	if high == nil {
		return 0, ErrNoScores
	}

	return *high, nil
}

// PastScores returns a user's most recent entries, newest first
func (s *MySqlStore) PastScores(ctx context.Context, userID string) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(PastScoreLimit).
		Find(&entries)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to query past scores: %w", result.Error)
	}
	if len(entries) == 0 {
		return nil, ErrNoScores
	}

	return entries, nil
}

// Leaderboard returns each user's best score joined to their username,
// descending, capped at LeaderboardLimit. Users without ledger entries are
// absent rather than shown with a zero.
func (s *MySqlStore) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	result := s.db.WithContext(ctx).Model(&ScoreEntry{}).
		Select("users.username AS username, MAX(scores.score) AS high_score").
		Joins("JOIN users ON users.id = scores.user_id").
		Group("users.id, users.username").
		Order("high_score DESC").
		Limit(LeaderboardLimit).
		Scan(&rows)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", result.Error)
	}

	return rows, nil
}
