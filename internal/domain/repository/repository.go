package repository

import "errors"

// ErrNotFound is returned by every store for absent or malformed ids.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique key (user email) is already taken.
var ErrDuplicate = errors.New("duplicate")
