package factgame

import "strings"

// GuessMatches reports whether a submitted guess names the correct statement.
// Comparison is case-insensitive after trimming surrounding whitespace, so
// "paris" and "Paris " both match "Paris".
func GuessMatches(guess, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(correct))
}

// AwardScore returns the score to record for a guess outcome: the full
// proposed score when correct, zero otherwise. Never negative, never partial.
func AwardScore(correct bool, proposed int) int {
	if correct && proposed > 0 {
		return proposed
	}
	return 0
}
