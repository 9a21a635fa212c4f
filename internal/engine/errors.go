package engine

import "errors"

// ErrPlacementExhausted is returned when rejection sampling could not find a
// coordinate that is not already in the point set.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")
