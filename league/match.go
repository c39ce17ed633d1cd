package league

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Junate-World/talented-league/models"
)

// MatchService records finalized match outcomes. A recording overwrites the
// score, replaces the match's event timeline, rebuilds the season table and
// re-derives player counters, all inside one transaction. Re-recording a
// match first reverts the prior event set's contribution so nothing is
// counted twice.
type MatchService struct {
	db        *bun.DB
	standings *StandingsService
	log       *zap.Logger
}

// NewMatchService creates a MatchService that delegates table rebuilds to
// the given StandingsService.
func NewMatchService(db *bun.DB, standings *StandingsService, log *zap.Logger) *MatchService {
	return &MatchService{db: db, standings: standings, log: log}
}

// RecordResult stores the result and event timeline for a match and updates
// every derived stat. It returns ErrMatchNotFound for an unknown match. On
// any failure the transaction rolls back and prior state is untouched.
//
// Concurrent recordings for the same match serialize on the row lock taken
// here; the revert-then-reapply sequence is not safe under interleaving.
func (s *MatchService) RecordResult(ctx context.Context, matchID, homeGoals, awayGoals int, events []EventInput) (*models.Match, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin recording tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	match := new(models.Match)
	err = tx.NewSelect().Model(match).
		Where("m.id = ?", matchID).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match %d: %w", matchID, ErrMatchNotFound)
		}
		return nil, fmt.Errorf("load match %d: %w", matchID, err)
	}

	players := make(map[int]*models.Player)
	touched := make(map[int]bool)

	// A previously recorded result has already been folded into the player
	// counters; undo its contribution before anything changes. This must
	// read the stored events while they are still present.
	if match.IsPlayed {
		var prior []*models.MatchEvent
		err = tx.NewSelect().Model(&prior).
			Where("e.match_id = ?", matchID).
			OrderExpr("e.minute, e.id").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("load prior events for match %d: %w", matchID, err)
		}
		if err := loadPlayers(ctx, tx, players, participants(prior)); err != nil {
			return nil, err
		}
		mc := matchContext{
			HomeTeamID: match.HomeTeamID,
			AwayTeamID: match.AwayTeamID,
			HomeGoals:  intOrZero(match.HomeGoals),
			AwayGoals:  intOrZero(match.AwayGoals),
		}
		for _, pid := range applyDeltas(players, matchStatDeltas(mc, prior, players), -1) {
			touched[pid] = true
		}
	}

	now := time.Now().UTC()
	match.HomeGoals = &homeGoals
	match.AwayGoals = &awayGoals
	match.IsPlayed = true
	match.PlayedAt = &now

	_, err = tx.NewUpdate().Model(match).
		Column("home_goals", "away_goals", "is_played", "played_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update match %d: %w", matchID, err)
	}

	if _, err = tx.NewDelete().Model((*models.MatchEvent)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("clear events for match %d: %w", matchID, err)
	}

	newEvents := normalizeEvents(matchID, events)
	if len(newEvents) > 0 {
		if _, err = tx.NewInsert().Model(&newEvents).Exec(ctx); err != nil {
			return nil, fmt.Errorf("insert events for match %d: %w", matchID, err)
		}
	}

	// Team stats live in the standings table only; rebuild it from the full
	// match history inside this same transaction.
	if err := s.standings.recompute(ctx, tx, match.SeasonID); err != nil {
		return nil, err
	}

	if err := loadPlayers(ctx, tx, players, participants(newEvents)); err != nil {
		return nil, err
	}
	mc := matchContext{
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
	}
	for _, pid := range applyDeltas(players, matchStatDeltas(mc, newEvents, players), 1) {
		touched[pid] = true
	}

	ids := make([]int, 0, len(touched))
	for pid := range touched {
		ids = append(ids, pid)
	}
	sort.Ints(ids)
	for _, pid := range ids {
		p, ok := players[pid]
		if !ok {
			continue
		}
		_, err = tx.NewUpdate().Model(p).
			Column("goals", "assists", "yellow_cards", "red_cards", "appearances", "clean_sheets").
			WherePK().
			Exec(ctx)
		if err != nil {
			return nil, fmt.Errorf("update player %d stats: %w", pid, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recording tx: %w", err)
	}
	committed = true

	s.log.Info("match result recorded",
		zap.Int("match_id", matchID),
		zap.Int("home_goals", homeGoals),
		zap.Int("away_goals", awayGoals),
		zap.Int("events", len(newEvents)),
		zap.Int("players_updated", len(ids)))

	match.Events = newEvents
	return match, nil
}

// loadPlayers fetches the players for any ids not already present in the map.
func loadPlayers(ctx context.Context, idb bun.IDB, into map[int]*models.Player, ids map[int]bool) error {
	missing := make([]int, 0, len(ids))
	for id := range ids {
		if _, ok := into[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var players []*models.Player
	err := idb.NewSelect().Model(&players).
		Where("p.id IN (?)", bun.In(missing)).
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	for _, p := range players {
		into[p.ID] = p
	}
	return nil
}
