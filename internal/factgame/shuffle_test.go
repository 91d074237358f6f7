package factgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleKeepsBothStatements(t *testing.T) {
	pair := Pair{Fact: "true thing", Fiction: "false thing"}

	statements := Shuffle(pair)
	require.Len(t, statements, 2)

	texts := map[string]string{
		statements[0].Label: statements[0].Text,
		statements[1].Label: statements[1].Text,
	}
	assert.Equal(t, "true thing", texts[LabelFact])
	assert.Equal(t, "false thing", texts[LabelFiction])
}

func TestShuffleIsUnbiased(t *testing.T) {
	pair := Pair{Fact: "true thing", Fiction: "false thing"}

	const trials = 10000
	factFirst := 0
	for range trials {
		if Shuffle(pair)[0].Label == LabelFact {
			factFirst++
		}
	}

	// Binomial(10000, 0.5) has a standard deviation of 50; a 400-count
	// tolerance is 8 sigma, so a fair shuffle essentially never fails this
	assert.InDelta(t, trials/2, factFirst, 400, "fact-first frequency %d of %d", factFirst, trials)
}
