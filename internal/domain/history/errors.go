package history

import "errors"

// ErrInvalidInput indicates an entry without a collection or action.
var ErrInvalidInput = errors.New("invalid history entry")
