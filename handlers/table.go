package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// tableRow is a flat scan target for the standings join query.
type tableRow struct {
	// standings table (alias sd)
	Position         int    `bun:"position"`
	PreviousPosition *int   `bun:"previous_position"`
	Played           int    `bun:"played"`
	Won              int    `bun:"won"`
	Drawn            int    `bun:"drawn"`
	Lost             int    `bun:"lost"`
	GoalsFor         int    `bun:"goals_for"`
	GoalsAgainst     int    `bun:"goals_against"`
	GoalDifference   int    `bun:"goal_difference"`
	Points           int    `bun:"points"`
	Form             string `bun:"form"`
	// teams table (alias t)
	TeamID        int    `bun:"team_id"`
	TeamName      string `bun:"team_name"`
	TeamShortName string `bun:"team_short_name"`
}

type tableEntry struct {
	Position         int    `json:"position"`
	PreviousPosition *int   `json:"previousPosition,omitempty"`
	PositionChange   *int   `json:"positionChange,omitempty"`
	TeamID           int    `json:"teamID"`
	TeamName         string `json:"teamName"`
	TeamShortName    string `json:"teamShortName"`
	Played           int    `json:"played"`
	Won              int    `json:"won"`
	Drawn            int    `json:"drawn"`
	Lost             int    `json:"lost"`
	GoalsFor         int    `json:"goalsFor"`
	GoalsAgainst     int    `json:"goalsAgainst"`
	GoalDifference   int    `json:"goalDifference"`
	Points           int    `json:"points"`
	Form             string `json:"form"`
}

type tableResponse struct {
	Season    *string      `json:"season"`
	SeasonID  int          `json:"seasonID,omitempty"`
	Standings []tableEntry `json:"standings"`
}

const tableJoinSQL = `
SELECT
	sd.position, sd.previous_position, sd.played, sd.won, sd.drawn, sd.lost,
	sd.goals_for, sd.goals_against, sd.goal_difference, sd.points, sd.form,
	t.id AS team_id, t.name AS team_name, t.short_name AS team_short_name
FROM standings sd
INNER JOIN teams t ON sd.team_id = t.id
WHERE sd.season_id = ?
ORDER BY sd.position
`

// Table returns the league table for the active season, or for an explicit
// ?seasonID, ordered by position.
func (h *Handler) Table(c echo.Context) error {
	ctx := c.Request().Context()

	var seasonID int
	var seasonName *string
	if v := c.QueryParam("seasonID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid seasonID param")
		}
		seasonID = id
	} else {
		season, err := h.currentSeason(ctx)
		if err != nil {
			return c.JSON(http.StatusOK, tableResponse{Standings: []tableEntry{}})
		}
		seasonID = season.ID
		seasonName = &season.Name
	}

	var rows []tableRow
	if err := h.db.NewRaw(tableJoinSQL, seasonID).Scan(ctx, &rows); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entries := make([]tableEntry, len(rows))
	for i, row := range rows {
		entry := tableEntry{
			Position:         row.Position,
			PreviousPosition: row.PreviousPosition,
			TeamID:           row.TeamID,
			TeamName:         row.TeamName,
			TeamShortName:    row.TeamShortName,
			Played:           row.Played,
			Won:              row.Won,
			Drawn:            row.Drawn,
			Lost:             row.Lost,
			GoalsFor:         row.GoalsFor,
			GoalsAgainst:     row.GoalsAgainst,
			GoalDifference:   row.GoalDifference,
			Points:           row.Points,
			Form:             row.Form,
		}
		if row.PreviousPosition != nil {
			change := *row.PreviousPosition - row.Position
			entry.PositionChange = &change
		}
		entries[i] = entry
	}

	return c.JSON(http.StatusOK, tableResponse{
		Season:    seasonName,
		SeasonID:  seasonID,
		Standings: entries,
	})
}
