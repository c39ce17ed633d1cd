package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Junate-World/talented-league/models"
)

const maxCommentLength = 1000

// TeamComments returns fan comments for a team, newest first.
func (h *Handler) TeamComments(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid team id")
	}

	var comments []models.FanComment
	err = h.db.NewSelect().Model(&comments).
		Where("fc.team_id = ?", teamID).
		OrderExpr("fc.created_at DESC").
		Limit(100).
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, comments)
}

// CreateTeamComment posts a fan comment on a team's page.
func (h *Handler) CreateTeamComment(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid team id")
	}

	var req struct {
		Author string `json:"author"`
		Body   string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.Author = strings.TrimSpace(req.Author)
	req.Body = strings.TrimSpace(req.Body)
	if req.Author == "" || req.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "author and body are required")
	}
	if len(req.Body) > maxCommentLength {
		return echo.NewHTTPError(http.StatusBadRequest, "comment too long")
	}

	exists, err := h.db.NewSelect().Model((*models.Team)(nil)).
		Where("id = ?", teamID).
		Exists(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "team not found")
	}

	comment := &models.FanComment{
		Author: req.Author,
		Body:   req.Body,
		TeamID: teamID,
	}
	if _, err := h.db.NewInsert().Model(comment).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}
