package belief

import "errors"

// ErrOutOfRange is returned by NewBelief when order falls outside [0,1].
var ErrOutOfRange = errors.New("belief: order out of range [0,1]")

// ErrContradictoryBelief is returned by Expand when the base already
// entails the negation of the incoming belief's expression.
var ErrContradictoryBelief = errors.New("belief: contradicts existing base")
