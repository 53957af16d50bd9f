package engine

import "errors"

// ErrDestroyInFlight is returned when a destroy pass starts while the previous
// one is still waiting for its settle delay.
var ErrDestroyInFlight = errors.New("engine: destroy already in flight")
