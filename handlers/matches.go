package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"

	"github.com/Junate-World/talented-league/league"
	"github.com/Junate-World/talented-league/models"
)

type createMatchRequest struct {
	SeasonID   int       `json:"seasonID"`
	Matchday   int       `json:"matchday"`
	Kickoff    time.Time `json:"kickoff"`
	HomeTeamID int       `json:"homeTeamID"`
	AwayTeamID int       `json:"awayTeamID"`
}

type recordResultRequest struct {
	HomeGoals int                 `json:"homeGoals"`
	AwayGoals int                 `json:"awayGoals"`
	Events    []league.EventInput `json:"events"`
}

// Matches returns the fixture list for a season (active by default),
// optionally filtered by matchday.
func (h *Handler) Matches(c echo.Context) error {
	ctx := c.Request().Context()

	var seasonID int
	if v := c.QueryParam("seasonID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid seasonID param")
		}
		seasonID = id
	} else {
		season, err := h.currentSeason(ctx)
		if err != nil {
			return c.JSON(http.StatusOK, []models.Match{})
		}
		seasonID = season.ID
	}

	var matches []models.Match
	q := h.db.NewSelect().Model(&matches).
		Relation("HomeTeam").
		Relation("AwayTeam").
		Where("m.season_id = ?", seasonID).
		OrderExpr("m.matchday ASC, m.kickoff ASC")

	if md := c.QueryParam("matchday"); md != "" {
		q = q.Where("m.matchday = ?", md)
	}

	if err := q.Scan(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, matches)
}

// MatchDetail returns one match with its event timeline.
func (h *Handler) MatchDetail(c echo.Context) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid match id")
	}

	match := &models.Match{}
	err = h.db.NewSelect().Model(match).
		Relation("HomeTeam").
		Relation("AwayTeam").
		Relation("Events", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("e.minute ASC, e.id ASC")
		}).
		Where("m.id = ?", matchID).
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "match not found")
	}

	return c.JSON(http.StatusOK, match)
}

// CreateMatch inserts a new fixture.
func (h *Handler) CreateMatch(c echo.Context) error {
	var req createMatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.SeasonID == 0 || req.HomeTeamID == 0 || req.AwayTeamID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "seasonID, homeTeamID and awayTeamID are required")
	}
	if req.HomeTeamID == req.AwayTeamID {
		return echo.NewHTTPError(http.StatusBadRequest, "a team cannot play itself")
	}
	if req.Matchday <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "matchday must be positive")
	}
	if req.Kickoff.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "kickoff is required")
	}

	match := &models.Match{
		SeasonID:   req.SeasonID,
		Matchday:   req.Matchday,
		Kickoff:    req.Kickoff,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	}

	if _, err := h.db.NewInsert().Model(match).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, match)
}

// RecordResult stores a finalized match outcome: scores and the event
// timeline. Re-submitting corrects a previously recorded result without
// double-counting any stat.
func (h *Handler) RecordResult(c echo.Context) error {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid match id")
	}

	var req recordResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.HomeGoals < 0 || req.AwayGoals < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "goals cannot be negative")
	}

	match, err := h.matches.RecordResult(c.Request().Context(), matchID, req.HomeGoals, req.AwayGoals, req.Events)
	if err != nil {
		if errors.Is(err, league.ErrMatchNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, match)
}
