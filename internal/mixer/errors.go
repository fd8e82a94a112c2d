package mixer

import "errors"

var (
	// ErrInvalidConfiguration reports a bad disc radius or tuning constant.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidTraitSet reports a trait list that cannot be reported unambiguously.
	ErrInvalidTraitSet = errors.New("invalid trait set")
)
