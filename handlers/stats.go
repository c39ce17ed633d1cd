package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/Junate-World/talented-league/models"
)

const statsLimit = 20

type statsResponse struct {
	TopScorers  []playerData `json:"topScorers"`
	TopAssists  []playerData `json:"topAssists"`
	CleanSheets []playerData `json:"cleanSheets"`
	MostCards   []playerData `json:"mostCards"`
}

// Stats returns the league statistics leaders for the active season's
// participating teams: scorers, assist providers, clean sheets and cards.
func (h *Handler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	season, err := h.currentSeason(ctx)
	if err != nil {
		return c.JSON(http.StatusOK, statsResponse{})
	}

	var teamIDs []int
	err = h.db.NewSelect().
		TableExpr("season_teams").
		ColumnExpr("team_id").
		Where("season_id = ?", season.ID).
		Scan(ctx, &teamIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(teamIDs) == 0 {
		return c.JSON(http.StatusOK, statsResponse{})
	}

	resp := statsResponse{}
	boards := []struct {
		dest  *[]playerData
		order string
		extra func(*bun.SelectQuery) *bun.SelectQuery
	}{
		{&resp.TopScorers, "p.goals DESC, p.assists DESC", nil},
		{&resp.TopAssists, "p.assists DESC, p.goals DESC", nil},
		{&resp.CleanSheets, "p.clean_sheets DESC", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("p.position IN (?)", bun.In([]string{models.PositionGoalkeeper, models.PositionDefender}))
		}},
		{&resp.MostCards, "p.yellow_cards + p.red_cards * 2 DESC", nil},
	}

	for _, b := range boards {
		var players []models.Player
		q := h.db.NewSelect().Model(&players).
			Relation("Team").
			Where("p.team_id IN (?)", bun.In(teamIDs)).
			OrderExpr(b.order).
			Limit(statsLimit)
		if b.extra != nil {
			q = b.extra(q)
		}
		if err := q.Scan(ctx); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		list := make([]playerData, len(players))
		for i, p := range players {
			list[i] = toPlayerData(&p)
		}
		*b.dest = list
	}

	return c.JSON(http.StatusOK, resp)
}
