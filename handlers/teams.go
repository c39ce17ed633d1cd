package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Junate-World/talented-league/models"
)

type createTeamRequest struct {
	Name        string  `json:"name"`
	ShortName   string  `json:"shortName"`
	FoundedYear *int    `json:"foundedYear,omitempty"`
	Stadium     *string `json:"stadium,omitempty"`
}

// Teams returns all teams, optionally filtered by a name search.
func (h *Handler) Teams(c echo.Context) error {
	search := strings.TrimSpace(c.QueryParam("q"))

	var teams []models.Team
	q := h.db.NewSelect().Model(&teams).OrderExpr("t.name ASC")
	if search != "" {
		pattern := fmt.Sprintf("%%%s%%", search)
		q = q.Where("t.name ILIKE ? OR t.short_name ILIKE ?", pattern, pattern)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, teams)
}

// CreateTeam inserts a new team.
func (h *Handler) CreateTeam(c echo.Context) error {
	var req createTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Name = strings.TrimSpace(req.Name)
	req.ShortName = strings.ToUpper(strings.TrimSpace(req.ShortName))

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.ShortName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "shortName is required")
	}
	if len(req.ShortName) > 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "shortName must be at most 10 characters")
	}

	team := &models.Team{
		Name:        req.Name,
		ShortName:   req.ShortName,
		FoundedYear: req.FoundedYear,
		Stadium:     req.Stadium,
	}

	if _, err := h.db.NewInsert().Model(team).Exec(c.Request().Context()); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
			return echo.NewHTTPError(http.StatusConflict, "team already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, team)
}
