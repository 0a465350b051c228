package model

import "errors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPlayerNotFound indicates that the player named in a roster operation does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidTeam indicates that name or location is missing.
	ErrInvalidTeam = errors.New("name and location are required")
	// ErrIDMismatch indicates that the body id differs from the path id.
	ErrIDMismatch = errors.New("id in body does not match id in path")
	// ErrTeamExists indicates that another team already uses the name or location.
	ErrTeamExists = errors.New("a team with this name or location already exists")
	// ErrRosterFull indicates that the roster already holds MaxPlayers players.
	ErrRosterFull = errors.New("Player count exceeded")
	// ErrPlayerOnTeam indicates that the player already belongs to a team.
	ErrPlayerOnTeam = errors.New("Player already a member of another team")
	// ErrConcurrencyConflict indicates that a save matched no row although the team still exists.
	ErrConcurrencyConflict = errors.New("team was modified concurrently")
)
