package store

import "errors"

// ErrNotFound signals that an update or delete matched no row. Handlers map
// it to a 404 response.
var ErrNotFound = errors.New("record not found")
