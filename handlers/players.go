package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Junate-World/talented-league/models"
)

type playerData struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Position     string `json:"position"`
	JerseyNumber *int   `json:"jerseyNumber,omitempty"`
	Age          *int   `json:"age,omitempty"`
	TeamID       int    `json:"teamID"`
	TeamName     string `json:"teamName"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	YellowCards  int    `json:"yellowCards"`
	RedCards     int    `json:"redCards"`
	Appearances  int    `json:"appearances"`
	CleanSheets  int    `json:"cleanSheets"`
}

type createPlayerRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	JerseyNumber *int   `json:"jerseyNumber,omitempty"`
	Age          *int   `json:"age,omitempty"`
	TeamID       int    `json:"teamID"`
}

// Players returns players with their team names, optionally filtered by
// name search or team.
func (h *Handler) Players(c echo.Context) error {
	search := strings.TrimSpace(c.QueryParam("q"))
	teamID := c.QueryParam("teamID")

	var players []models.Player
	q := h.db.NewSelect().Model(&players).
		Relation("Team").
		OrderExpr("p.last_name ASC, p.first_name ASC")

	if search != "" {
		pattern := fmt.Sprintf("%%%s%%", search)
		q = q.Where("p.first_name ILIKE ? OR p.last_name ILIKE ?", pattern, pattern)
	}
	if teamID != "" {
		q = q.Where("p.team_id = ?", teamID)
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	result := make([]playerData, len(players))
	for i, p := range players {
		result[i] = toPlayerData(&p)
	}

	return c.JSON(http.StatusOK, result)
}

// CreatePlayer inserts a new player.
func (h *Handler) CreatePlayer(c echo.Context) error {
	var req createPlayerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Position = strings.ToUpper(strings.TrimSpace(req.Position))

	if req.FirstName == "" || req.LastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "firstName and lastName are required")
	}
	switch req.Position {
	case models.PositionGoalkeeper, models.PositionDefender, models.PositionMidfielder, models.PositionForward:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "position must be GK, DEF, MID or FWD")
	}
	if req.TeamID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "teamID is required")
	}

	player := &models.Player{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		Age:          req.Age,
		TeamID:       req.TeamID,
	}

	if _, err := h.db.NewInsert().Model(player).Exec(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, toPlayerData(player))
}

func toPlayerData(p *models.Player) playerData {
	d := playerData{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		FullName:     p.FullName(),
		Position:     p.Position,
		JerseyNumber: p.JerseyNumber,
		Age:          p.Age,
		TeamID:       p.TeamID,
		Goals:        p.Goals,
		Assists:      p.Assists,
		YellowCards:  p.YellowCards,
		RedCards:     p.RedCards,
		Appearances:  p.Appearances,
		CleanSheets:  p.CleanSheets,
	}
	if p.Team != nil {
		d.TeamName = p.Team.Name
	}
	return d
}
