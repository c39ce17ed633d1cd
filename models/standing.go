package models

import "github.com/uptrace/bun"

// Standing is one league-table row for a team in a season. Rows are fully
// regenerated on every recompute; previous_position carries the team's rank
// from the prior generation so the table can show movement.
type Standing struct {
	bun.BaseModel `bun:"table:standings,alias:sd"`

	ID               int  `bun:"id,pk,autoincrement" json:"id"`
	Position         int  `bun:"position,notnull" json:"position"`
	PreviousPosition *int `bun:"previous_position" json:"previousPosition,omitempty"`

	Played         int `bun:"played,notnull,default:0" json:"played"`
	Won            int `bun:"won,notnull,default:0" json:"won"`
	Drawn          int `bun:"drawn,notnull,default:0" json:"drawn"`
	Lost           int `bun:"lost,notnull,default:0" json:"lost"`
	GoalsFor       int `bun:"goals_for,notnull,default:0" json:"goalsFor"`
	GoalsAgainst   int `bun:"goals_against,notnull,default:0" json:"goalsAgainst"`
	GoalDifference int `bun:"goal_difference,notnull,default:0" json:"goalDifference"`
	Points         int `bun:"points,notnull,default:0" json:"points"`

	// Form holds the last 5 results, most recent first, e.g. "WWDLW".
	Form string `bun:"form,notnull,default:''" json:"form"`

	SeasonID int `bun:"season_id,notnull" json:"seasonID"`
	TeamID   int `bun:"team_id,notnull" json:"teamID"`

	Season *Season `bun:"rel:belongs-to,join:season_id=id" json:"-"`
	Team   *Team   `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}

// PositionChange returns how far the team moved since the previous
// generation: positive = up, negative = down, nil = new entry.
func (s *Standing) PositionChange() *int {
	if s.PreviousPosition == nil {
		return nil
	}
	d := *s.PreviousPosition - s.Position
	return &d
}
