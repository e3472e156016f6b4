package scoring

import "errors"

// ErrNotFound is returned when the asset does not exist or is not owned by the caller.
var ErrNotFound = errors.New("asset not found")
