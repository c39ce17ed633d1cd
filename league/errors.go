// Package league implements the result-recording workflow and the standings
// engine: recording a finalized match outcome keeps the denormalized player
// counters consistent with the stored event timeline, and every recording
// triggers a full recompute of the season's table from match history.
package league

import "errors"

var (
	// ErrSeasonNotFound is returned when a referenced season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrMatchNotFound is returned when a referenced match does not exist.
	ErrMatchNotFound = errors.New("match not found")
)
