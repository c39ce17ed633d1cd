package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Match is a fixture between two teams in a season.
// HomeGoals/AwayGoals stay nil until a result is recorded.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID       int       `bun:"id,pk,autoincrement" json:"id"`
	Matchday int       `bun:"matchday,notnull" json:"matchday"`
	Kickoff  time.Time `bun:"kickoff,notnull" json:"kickoff"`

	HomeGoals *int `bun:"home_goals" json:"homeGoals,omitempty"`
	AwayGoals *int `bun:"away_goals" json:"awayGoals,omitempty"`

	IsPlayed bool       `bun:"is_played,notnull,default:false" json:"isPlayed"`
	PlayedAt *time.Time `bun:"played_at" json:"playedAt,omitempty"`

	SeasonID   int `bun:"season_id,notnull" json:"seasonID"`
	HomeTeamID int `bun:"home_team_id,notnull" json:"homeTeamID"`
	AwayTeamID int `bun:"away_team_id,notnull" json:"awayTeamID"`

	Season   *Season       `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	HomeTeam *Team         `bun:"rel:belongs-to,join:home_team_id=id" json:"-"`
	AwayTeam *Team         `bun:"rel:belongs-to,join:away_team_id=id" json:"-"`
	Events   []*MatchEvent `bun:"rel:has-many,join:id=match_id" json:"events,omitempty"`
}

// HasResult reports whether both scores have been recorded.
func (m *Match) HasResult() bool {
	return m.IsPlayed && m.HomeGoals != nil && m.AwayGoals != nil
}

// WinnerID returns the winning team id, or 0 on a draw or unplayed match.
func (m *Match) WinnerID() int {
	if !m.HasResult() {
		return 0
	}
	switch {
	case *m.HomeGoals > *m.AwayGoals:
		return m.HomeTeamID
	case *m.AwayGoals > *m.HomeGoals:
		return m.AwayTeamID
	}
	return 0
}
