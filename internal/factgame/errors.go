package factgame

import "errors"

var (
	// ErrExtraction reports completion text that does not contain a usable
	// Fact:/Fiction: pair. The provider's output format is not guaranteed,
	// so callers must treat this as recoverable.
	ErrExtraction = errors.New("could not extract fact/fiction pair from completion")

	// ErrRoundNotFound reports a guess against a round that was never
	// issued, already resolved, or swept after its deadline.
	ErrRoundNotFound = errors.New("round not found")
)
