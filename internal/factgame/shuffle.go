package factgame

import "math/rand/v2"

// Ground-truth labels attached to statements before shuffling
const (
	LabelFact    = "fact"
	LabelFiction = "fiction"
)

// Statement is one labeled statement as presented to the player
type Statement struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Shuffle places the pair into a two-element sequence in a uniformly random
// order so the presentation position carries no information about which
// statement is true. rand.Shuffle is an unbiased Fisher-Yates permutation.
func Shuffle(pair Pair) []Statement {
	statements := []Statement{
		{Text: pair.Fact, Label: LabelFact},
		{Text: pair.Fiction, Label: LabelFiction},
	}

	rand.Shuffle(len(statements), func(i, j int) {
		statements[i], statements[j] = statements[j], statements[i]
	})

	return statements
}
