package factgame

import "sync"

// DefaultRecentCap is how many previously issued facts are remembered per user
const DefaultRecentCap = 5

// RecentFacts is a per-user bounded history of previously issued fact
// strings, used to steer prompt construction away from repeats. Eviction is
// FIFO: once the cap is reached the oldest entry is dropped. The history is
// process-local and never persisted; concurrent rounds for the same user are
// last-write-wins on the trim.
type RecentFacts struct {
	mu    sync.Mutex
	cap   int
	facts map[string][]string
}

// NewRecentFacts creates a history with the given per-user cap.
// A cap <= 0 falls back to DefaultRecentCap.
func NewRecentFacts(cap int) *RecentFacts {
	if cap <= 0 {
		cap = DefaultRecentCap
	}

	return &RecentFacts{
		cap:   cap,
		facts: make(map[string][]string),
	}
}

// Add appends a fact to a user's history, evicting the oldest past the cap
func (r *RecentFacts) Add(userID, fact string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := append(r.facts[userID], fact)
	if len(history) > r.cap {
		history = history[len(history)-r.cap:]
	}
	r.facts[userID] = history
}

// Get returns a copy of a user's history, oldest first
func (r *RecentFacts) Get(userID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.facts[userID]
	out := make([]string, len(history))
	copy(out, history)
	return out
}
