package handlers

import (
	"github.com/uptrace/bun"

	"github.com/Junate-World/talented-league/league"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db        *bun.DB
	matches   *league.MatchService
	standings *league.StandingsService
	JWTKey    []byte
}

// New creates a Handler with the given database connection, core services
// and JWT signing key.
func New(db *bun.DB, matches *league.MatchService, standings *league.StandingsService, jwtKey []byte) *Handler {
	return &Handler{db: db, matches: matches, standings: standings, JWTKey: jwtKey}
}
