package factgame

import (
	"sync"
	"time"
)

// DefaultRoundBudget is how long a player has to resolve a round
const DefaultRoundBudget = 12 * time.Second

// DefaultRoundGrace is how long past its deadline a round stays guessable.
// A guess that races the deadline still finds its round and is scored as a
// timeout loss rather than a 404.
const DefaultRoundGrace = 2 * time.Second

// Round is one server-persisted fact/fiction presentation awaiting a guess.
// Persisting the pair keyed by ID lets guesses be validated against the
// stored record instead of a client-echoed answer.
type Round struct {
	ID       string
	UserID   string
	Category string
	Fact     string
	Fiction  string
	Score    int
	IssuedAt time.Time
	Deadline time.Time
}

// Expired reports whether the round's time budget has run out
func (r Round) Expired(now time.Time) bool {
	return now.After(r.Deadline)
}

// RoundStore holds active rounds in memory. A round leaves the store exactly
// once: either a guess resolves it, or the janitor sweeps it after its
// deadline and reports it through the expiry callback so the caller can
// record the timeout loss. Both paths remove the round under the same lock,
// so a round can never produce two terminal writes.
type RoundStore struct {
	mu     sync.Mutex
	rounds map[string]*Round

	budget   time.Duration
	grace    time.Duration
	onExpire func(Round)

	stopOnce sync.Once
	stop     chan struct{}
}

// NewRoundStore creates a store whose rounds expire after budget plus grace.
// onExpire, if non-nil, is invoked once per swept round from the janitor
// goroutine. A budget <= 0 falls back to DefaultRoundBudget; a negative
// grace falls back to DefaultRoundGrace (zero disables the grace window).
func NewRoundStore(budget, grace time.Duration, onExpire func(Round)) *RoundStore {
	if budget <= 0 {
		budget = DefaultRoundBudget
	}
	if grace < 0 {
		grace = DefaultRoundGrace
	}

	s := &RoundStore{
		rounds:   make(map[string]*Round),
		budget:   budget,
		grace:    grace,
		onExpire: onExpire,
		stop:     make(chan struct{}),
	}

	go s.janitor()

	return s
}

// Budget returns the round time budget
func (s *RoundStore) Budget() time.Duration {
	return s.budget
}

// Put stores a round, stamping its issue time and deadline
func (s *RoundStore) Put(round *Round) {
	now := time.Now()
	round.IssuedAt = now
	round.Deadline = now.Add(s.budget)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds[round.ID] = round
}

// Take removes and returns the round for a guess by its owner. The round is
// gone afterwards, so a second guess against the same ID sees
// ErrRoundNotFound. A guess from anyone but the round's owner also fails
// with ErrRoundNotFound, but leaves the round in place so the owner (or the
// janitor) still resolves it.
func (s *RoundStore) Take(id, userID string) (Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	round, ok := s.rounds[id]
	if !ok || round.UserID != userID {
		return Round{}, ErrRoundNotFound
	}

	delete(s.rounds, id)
	return *round, nil
}

// Len reports how many rounds are currently active
func (s *RoundStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rounds)
}

// Stop shuts down the janitor goroutine
func (s *RoundStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// janitor periodically sweeps expired rounds and reports each one once
func (s *RoundStore) janitor() {
	ticker := time.NewTicker(s.sweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			for _, round := range s.expireBefore(now) {
				if s.onExpire != nil {
					s.onExpire(round)
				}
			}
		}
	}
}

// sweepInterval scales the janitor's tick with the round budget so that
// short-budget stores still sweep promptly
func (s *RoundStore) sweepInterval() time.Duration {
	interval := s.budget / 2
	if interval > time.Second {
		interval = time.Second
	}
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// expireBefore removes and returns every round whose deadline plus the
// grace window passed
func (s *RoundStore) expireBefore(now time.Time) []Round {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []Round
	for id, round := range s.rounds {
		if now.After(round.Deadline.Add(s.grace)) {
			expired = append(expired, *round)
			delete(s.rounds, id)
		}
	}
	return expired
}
