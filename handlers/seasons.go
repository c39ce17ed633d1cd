package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Junate-World/talented-league/league"
	"github.com/Junate-World/talented-league/models"
)

type createSeasonRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Seasons returns all seasons, newest first.
func (h *Handler) Seasons(c echo.Context) error {
	var seasons []models.Season
	err := h.db.NewSelect().Model(&seasons).
		OrderExpr("s.start_date DESC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, seasons)
}

// CreateSeason inserts a new season.
func (h *Handler) CreateSeason(c echo.Context) error {
	var req createSeasonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.StartDate == "" || req.EndDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate and endDate are required")
	}

	season := &models.Season{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if _, err := h.db.NewInsert().Model(season).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, season)
}

// ActivateSeason marks one season active and deactivates the rest.
// At most one season may be active; this is where that rule lives.
func (h *Handler) ActivateSeason(c echo.Context) error {
	seasonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid season id")
	}

	ctx := c.Request().Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.NewUpdate().Model((*models.Season)(nil)).
		Set("is_active = (id = ?)", seasonID).
		Where("is_active OR id = ?", seasonID).
		Exec(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "season not found")
	}

	if err = tx.Commit(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	committed = true

	return c.NoContent(http.StatusOK)
}

// AddSeasonTeam registers a team as a season participant.
func (h *Handler) AddSeasonTeam(c echo.Context) error {
	seasonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid season id")
	}

	var req struct {
		TeamID int `json:"teamID"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TeamID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "teamID is required")
	}

	st := &models.SeasonTeam{SeasonID: seasonID, TeamID: req.TeamID}
	_, err = h.db.NewInsert().Model(st).
		On("CONFLICT (season_id, team_id) DO NOTHING").
		Exec(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusCreated)
}

// RecomputeStandings rebuilds the season's table on demand.
func (h *Handler) RecomputeStandings(c echo.Context) error {
	seasonID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid season id")
	}

	if err := h.standings.Recompute(c.Request().Context(), seasonID); err != nil {
		if errors.Is(err, league.ErrSeasonNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusAccepted)
}

// currentSeason resolves the active season, falling back to the latest by
// start date. Returns sql.ErrNoRows when no seasons exist at all.
func (h *Handler) currentSeason(ctx context.Context) (*models.Season, error) {
	season := &models.Season{}
	err := h.db.NewSelect().Model(season).
		Where("s.is_active").
		Limit(1).
		Scan(ctx)
	if err == nil {
		return season, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = h.db.NewSelect().Model(season).
		OrderExpr("s.start_date DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return season, nil
}
