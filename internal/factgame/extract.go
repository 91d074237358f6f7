package factgame

import (
	"fmt"
	"strings"
)

// Line prefixes the prompt instructs the provider to emit
const (
	factPrefix    = "Fact:"
	fictionPrefix = "Fiction:"
)

// Pair is an extracted fact/fiction statement pair
type Pair struct {
	Fact    string
	Fiction string
}

// Extract parses raw completion text into a fact/fiction pair. It scans for
// the first line starting with "Fact:" and the first starting with
// "Fiction:", in either order, and strips the prefix and surrounding
// whitespace. A missing prefix or an empty statement yields ErrExtraction.
func Extract(completion string) (Pair, error) {
	var pair Pair
	var haveFact, haveFiction bool

	for _, line := range strings.Split(completion, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case !haveFact && strings.HasPrefix(line, factPrefix):
			pair.Fact = strings.TrimSpace(strings.TrimPrefix(line, factPrefix))
			haveFact = true
		case !haveFiction && strings.HasPrefix(line, fictionPrefix):
			pair.Fiction = strings.TrimSpace(strings.TrimPrefix(line, fictionPrefix))
			haveFiction = true
		}
	}

	if !haveFact || pair.Fact == "" {
		return Pair{}, fmt.Errorf("%w: missing %q line", ErrExtraction, factPrefix)
	}
	if !haveFiction || pair.Fiction == "" {
		return Pair{}, fmt.Errorf("%w: missing %q line", ErrExtraction, fictionPrefix)
	}

	return pair, nil
}
