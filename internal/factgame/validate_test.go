package factgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessMatches(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		assert.True(t, GuessMatches("Paris", "paris"))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.True(t, GuessMatches("Paris ", "Paris"))
		assert.True(t, GuessMatches("  paris", "PARIS  "))
	})

	t.Run("different text", func(t *testing.T) {
		assert.False(t, GuessMatches("Rome", "Paris"))
	})

	t.Run("empty guess", func(t *testing.T) {
		assert.False(t, GuessMatches("", "Paris"))
	})
}

func TestAwardScore(t *testing.T) {
	assert.Equal(t, 10, AwardScore(true, 10))
	assert.Equal(t, 0, AwardScore(false, 10))

	// Never negative, never partial
	assert.Equal(t, 0, AwardScore(true, -5))
	assert.Equal(t, 0, AwardScore(false, -5))
	assert.Equal(t, 0, AwardScore(true, 0))
}
