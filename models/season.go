package models

import "github.com/uptrace/bun"

// Season represents one league season, e.g. "2024-2025".
// At most one season should be active at a time; enforced by the
// season handlers, not by the database.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	Name      string `bun:"name,notnull" json:"name"`
	StartDate string `bun:"start_date,notnull,type:date" json:"startDate"`
	EndDate   string `bun:"end_date,notnull,type:date" json:"endDate"`
	IsActive  bool   `bun:"is_active,notnull,default:false" json:"isActive"`

	Teams []*Team `bun:"m2m:season_teams,join:Season=Team" json:"-"`
}

// SeasonTeam joins seasons to their participating teams.
type SeasonTeam struct {
	bun.BaseModel `bun:"table:season_teams,alias:st"`

	SeasonID int `bun:"season_id,pk" json:"seasonID"`
	TeamID   int `bun:"team_id,pk" json:"teamID"`

	Season *Season `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	Team   *Team   `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}
