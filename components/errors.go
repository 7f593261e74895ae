package components

import "errors"

// ErrMissingEntity is returned when a query that expects exactly one player
// or amulet finds none.
var ErrMissingEntity = errors.New("required entity missing")
