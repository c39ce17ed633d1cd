package models

import "github.com/uptrace/bun"

// Player positions.
const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DEF"
	PositionMidfielder = "MID"
	PositionForward    = "FWD"
)

// Player is a footballer registered to a team.
//
// The counter columns are denormalized aggregates maintained by the result
// recorder. Their source of truth is the match_events table: after any
// recording transaction commits they must equal a fresh aggregation over
// all stored events.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID            int     `bun:"id,pk,autoincrement" json:"id"`
	FirstName     string  `bun:"first_name,notnull" json:"firstName"`
	LastName      string  `bun:"last_name,notnull" json:"lastName"`
	Position      string  `bun:"position,notnull" json:"position"`
	JerseyNumber  *int    `bun:"jersey_number" json:"jerseyNumber,omitempty"`
	Age           *int    `bun:"age" json:"age,omitempty"`
	PhotoFilename *string `bun:"photo_filename" json:"photo,omitempty"`

	Goals       int `bun:"goals,notnull,default:0" json:"goals"`
	Assists     int `bun:"assists,notnull,default:0" json:"assists"`
	YellowCards int `bun:"yellow_cards,notnull,default:0" json:"yellowCards"`
	RedCards    int `bun:"red_cards,notnull,default:0" json:"redCards"`
	Appearances int `bun:"appearances,notnull,default:0" json:"appearances"`
	CleanSheets int `bun:"clean_sheets,notnull,default:0" json:"cleanSheets"`

	TeamID int `bun:"team_id,notnull" json:"teamID"`

	Team *Team `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}

// FullName returns the display name.
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsDefensive reports whether the player qualifies for the clean-sheet stat.
func (p *Player) IsDefensive() bool {
	return p.Position == PositionGoalkeeper || p.Position == PositionDefender
}
