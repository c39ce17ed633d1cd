package league

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Junate-World/talented-league/models"
)

// StandingsService recomputes a season's table from its full match history.
// Every call replaces all Standing rows for the season rather than patching
// them, so the table is always a pure function of the stored matches.
type StandingsService struct {
	db  *bun.DB
	log *zap.Logger
}

// NewStandingsService creates a StandingsService.
func NewStandingsService(db *bun.DB, log *zap.Logger) *StandingsService {
	return &StandingsService{db: db, log: log}
}

// Recompute rebuilds the season's standings in its own transaction. It
// returns ErrSeasonNotFound for an unknown season and no-ops for a season
// with no participating teams.
func (s *StandingsService) Recompute(ctx context.Context, seasonID int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin standings tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.recompute(ctx, tx, seasonID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit standings tx: %w", err)
	}
	committed = true
	return nil
}

// recompute runs against the supplied executor so the result recorder can
// fold the table rebuild into its own transaction.
func (s *StandingsService) recompute(ctx context.Context, idb bun.IDB, seasonID int) error {
	exists, err := idb.NewSelect().Model((*models.Season)(nil)).
		Where("s.id = ?", seasonID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("check season %d: %w", seasonID, err)
	}
	if !exists {
		return fmt.Errorf("season %d: %w", seasonID, ErrSeasonNotFound)
	}

	var teamIDs []int
	err = idb.NewSelect().
		TableExpr("season_teams").
		ColumnExpr("team_id").
		Where("season_id = ?", seasonID).
		Scan(ctx, &teamIDs)
	if err != nil {
		return fmt.Errorf("load season %d teams: %w", seasonID, err)
	}
	if len(teamIDs) == 0 {
		s.log.Debug("season has no teams, skipping standings", zap.Int("season_id", seasonID))
		return nil
	}

	// Most recent first, as the form strings need it. Accumulation itself
	// is order-independent.
	var matches []*models.Match
	err = idb.NewSelect().Model(&matches).
		Where("m.season_id = ?", seasonID).
		Where("m.is_played").
		Where("m.home_goals IS NOT NULL").
		Where("m.away_goals IS NOT NULL").
		OrderExpr("m.kickoff DESC, m.id DESC").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("load season %d matches: %w", seasonID, err)
	}

	records := accumulateRecords(matches, teamIDs)
	for tid, form := range buildFormMap(matches, teamIDs) {
		records[tid].Form = form
	}

	all := make([]*TeamRecord, 0, len(records))
	for _, r := range records {
		all = append(all, r)
	}
	ranked := Rank(all)

	type prevRow struct {
		TeamID   int `bun:"team_id"`
		Position int `bun:"position"`
	}
	var prev []prevRow
	err = idb.NewSelect().
		TableExpr("standings").
		ColumnExpr("team_id, position").
		Where("season_id = ?", seasonID).
		Scan(ctx, &prev)
	if err != nil {
		return fmt.Errorf("load season %d prior standings: %w", seasonID, err)
	}
	prevPositions := make(map[int]int, len(prev))
	for _, p := range prev {
		prevPositions[p.TeamID] = p.Position
	}

	if _, err := idb.NewDelete().Model((*models.Standing)(nil)).
		Where("season_id = ?", seasonID).
		Exec(ctx); err != nil {
		return fmt.Errorf("clear season %d standings: %w", seasonID, err)
	}

	rows := make([]*models.Standing, len(ranked))
	for i, r := range ranked {
		row := &models.Standing{
			Position:       i + 1,
			Played:         r.Played,
			Won:            r.Won,
			Drawn:          r.Drawn,
			Lost:           r.Lost,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			GoalDifference: r.GoalDifference,
			Points:         r.Points,
			Form:           r.Form,
			SeasonID:       seasonID,
			TeamID:         r.TeamID,
		}
		if pos, ok := prevPositions[r.TeamID]; ok {
			row.PreviousPosition = &pos
		}
		rows[i] = row
	}

	if _, err := idb.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("insert season %d standings: %w", seasonID, err)
	}

	s.log.Debug("standings recomputed",
		zap.Int("season_id", seasonID),
		zap.Int("teams", len(rows)),
		zap.Int("matches", len(matches)))
	return nil
}
