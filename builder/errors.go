package builder

import "errors"

// ErrTooFewValves is returned when a size parameter is below its minimum.
var ErrTooFewValves = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor has no RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
