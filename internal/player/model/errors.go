package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidPlayer indicates that first_name or last_name is missing.
	ErrInvalidPlayer = errors.New("first_name and last_name are required")
	// ErrIDMismatch indicates that the path id differs from the id in the body.
	ErrIDMismatch = errors.New("path id does not match body id")
	// ErrConcurrencyConflict indicates that the player row changed during an
	// update for a reason other than deletion.
	ErrConcurrencyConflict = errors.New("player was modified concurrently")
)
