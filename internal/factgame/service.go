// Package factgame implements the fact-or-fiction round pipeline: prompt
// construction, completion extraction, shuffling, server-side round state,
// guess validation, and the score ledger writes that follow.
package factgame

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/guessquest/guessquest/internal/stores/scores"
	"github.com/guessquest/guessquest/pkg/llm"
)

// DefaultRoundScore is the server-fixed award for a correct round guess
const DefaultRoundScore = 10

// StartResult is a freshly issued round as handed to the client. The
// statements are already shuffled; the round ID keys the stored pair for
// later validation.
type StartResult struct {
	RoundID    string
	Category   string
	Statements []Statement
}

// GuessResult is the outcome of one validated guess
type GuessResult struct {
	Correct bool
	Score   int
}

// Service runs the fact-or-fiction game
type Service struct {
	provider   llm.Provider
	ledger     scores.Store
	recent     *RecentFacts
	rounds     *RoundStore
	roundScore int
}

// ServiceOption customizes a Service
type ServiceOption func(*serviceConfig)

type serviceConfig struct {
	roundBudget time.Duration
	roundGrace  time.Duration
	roundScore  int
	recentCap   int
}

// WithRoundBudget overrides the per-round time budget
func WithRoundBudget(budget time.Duration) ServiceOption {
	return func(c *serviceConfig) {
		c.roundBudget = budget
	}
}

// WithRoundGrace overrides how long past its deadline a round stays
// guessable before the janitor sweeps it
func WithRoundGrace(grace time.Duration) ServiceOption {
	return func(c *serviceConfig) {
		c.roundGrace = grace
	}
}

// WithRoundScore overrides the server-fixed award for a correct guess
func WithRoundScore(score int) ServiceOption {
	return func(c *serviceConfig) {
		c.roundScore = score
	}
}

// WithRecentCap overrides the per-user recent-fact history size
func WithRecentCap(cap int) ServiceOption {
	return func(c *serviceConfig) {
		c.recentCap = cap
	}
}

// NewService wires the pipeline together. Rounds that expire unanswered are
// recorded as losses by the round store's janitor, so every issued round
// produces exactly one terminal ledger write once it resolves or times out.
func NewService(provider llm.Provider, ledger scores.Store, opts ...ServiceOption) *Service {
	cfg := serviceConfig{
		roundBudget: DefaultRoundBudget,
		roundGrace:  DefaultRoundGrace,
		roundScore:  DefaultRoundScore,
		recentCap:   DefaultRecentCap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Service{
		provider:   provider,
		ledger:     ledger,
		recent:     NewRecentFacts(cfg.recentCap),
		roundScore: cfg.roundScore,
	}

	s.rounds = NewRoundStore(cfg.roundBudget, cfg.roundGrace, s.recordTimeout)

	return s
}

// Close stops the round janitor
func (s *Service) Close() {
	s.rounds.Stop()
}

// StartRound builds a prompt for the category, calls the completion
// provider, extracts and shuffles the statement pair, and stores the round
// for later validation.
func (s *Service) StartRound(ctx context.Context, userID, category string) (StartResult, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return StartResult{}, fmt.Errorf("category is required")
	}

	prompt := BuildPrompt(category, s.recent.Get(userID))

	completion, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return StartResult{}, err
	}

	pair, err := Extract(completion)
	if err != nil {
		return StartResult{}, err
	}

	s.recent.Add(userID, pair.Fact)

	round := &Round{
		ID:       uuid.NewString(),
		UserID:   userID,
		Category: category,
		Fact:     pair.Fact,
		Fiction:  pair.Fiction,
		Score:    s.roundScore,
	}
	s.rounds.Put(round)

	return StartResult{
		RoundID:    round.ID,
		Category:   category,
		Statements: Shuffle(pair),
	}, nil
}

// ValidateGuess checks a guess against the stored round and records the
// outcome. A guess arriving after the round's deadline is scored as a
// timeout loss. The owner's guess consumes the round, so a second guess
// against the same ID fails with ErrRoundNotFound; a guess from anyone else
// also gets ErrRoundNotFound but leaves the round for its owner.
func (s *Service) ValidateGuess(ctx context.Context, userID, roundID, guess string) (GuessResult, error) {
	round, err := s.rounds.Take(roundID, userID)
	if err != nil {
		return GuessResult{}, err
	}

	correct := !round.Expired(time.Now()) && GuessMatches(guess, round.Fact)
	awarded := AwardScore(correct, round.Score)

	if err := s.ledger.Append(ctx, userID, awarded); err != nil {
		return GuessResult{}, fmt.Errorf("failed to record score: %w", err)
	}

	return GuessResult{Correct: correct, Score: awarded}, nil
}

// ValidateClientGuess implements the legacy contract where the client echoes
// back the statement it believes is correct along with a proposed score. It
// exists so clients that predate server-side rounds keep working; the
// round-ID path should be preferred.
func (s *Service) ValidateClientGuess(ctx context.Context, userID, guess, correctAnswer string, proposedScore int) (GuessResult, error) {
	correct := GuessMatches(guess, correctAnswer)
	awarded := AwardScore(correct, proposedScore)

	if err := s.ledger.Append(ctx, userID, awarded); err != nil {
		return GuessResult{}, fmt.Errorf("failed to record score: %w", err)
	}

	return GuessResult{Correct: correct, Score: awarded}, nil
}

// SaveFinalScore appends a game-over score to the ledger
func (s *Service) SaveFinalScore(ctx context.Context, userID string, finalScore int) error {
	if finalScore < 0 {
		return fmt.Errorf("final score must not be negative")
	}

	if err := s.ledger.Append(ctx, userID, finalScore); err != nil {
		return fmt.Errorf("failed to record final score: %w", err)
	}

	return nil
}

// recordTimeout writes the terminal loss entry for a round the janitor swept
func (s *Service) recordTimeout(round Round) {
	if err := s.ledger.Append(context.Background(), round.UserID, 0); err != nil {
		log.Printf("[FACTGAME]: Failed to record timeout for round %s: %v", round.ID, err)
	}
}
