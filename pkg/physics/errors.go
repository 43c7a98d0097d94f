package physics

import "errors"

// ErrInvalidConfig is returned when a simulator or body is constructed with
// parameters it cannot run with (non-positive G, non-positive mass, empty or
// malformed body list). Check with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")
