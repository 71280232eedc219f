package slotting

import "errors"

// ErrDegenerateInput is returned by Allocate and FindOptimalN when the
// candidate set is empty or carries zero total demand. The closed-form split
// would divide by zero; surfacing the error beats silently returning NaN or
// Inf volumes.
var ErrDegenerateInput = errors.New("allocation over empty or zero-demand candidate set")
