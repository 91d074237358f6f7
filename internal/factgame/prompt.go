package factgame

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the completion-provider instruction for one round.
// The output is deterministic for a given category and recent-fact list; all
// randomness lives in the provider. Recent facts, when present, are listed so
// the provider steers away from statements the player has already seen.
func BuildPrompt(category string, recentFacts []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate a true fact and a plausible fictional statement based on the following category: %s.\n", category)
	sb.WriteString("Format:\n")
	sb.WriteString("Fact: [True fact about the category]\n")
	sb.WriteString("Fiction: [False statement about the category]")

	if len(recentFacts) > 0 {
		sb.WriteString("\nDo not repeat any of these facts:\n")
		for _, fact := range recentFacts {
			fmt.Fprintf(&sb, "- %s\n", fact)
		}
	}

	return sb.String()
}
