package analysis

import "errors"

// ErrNilGrid indicates Analyze was called without a grid.
var ErrNilGrid = errors.New("analysis: grid is nil")
