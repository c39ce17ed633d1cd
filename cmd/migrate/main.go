// cmd/migrate/main.go
// Migrates data from the legacy MySQL league database into the local
// PostgreSQL database. Standings are not copied; recompute them per
// season through the admin API once the import finishes.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/league?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"

	"github.com/Junate-World/talented-league/config"
	bundb "github.com/Junate-World/talented-league/db"
	"github.com/Junate-World/talented-league/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/league?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	// Disable FK enforcement so we can load in bulk without strict ordering
	if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'replica'"); err != nil {
		log.Fatalf("disable FK: %v", err)
	}
	defer func() {
		if _, err := pgDB.ExecContext(ctx, "SET session_replication_role = 'origin'"); err != nil {
			log.Printf("re-enable FK: %v", err)
		}
	}()

	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"users", func() (int, error) { return migrateUsers(ctx, myDB, pgDB) }},
		{"teams", func() (int, error) { return migrateTeams(ctx, myDB, pgDB) }},
		{"seasons", func() (int, error) { return migrateSeasons(ctx, myDB, pgDB) }},
		{"season_teams", func() (int, error) { return migrateSeasonTeams(ctx, myDB, pgDB) }},
		{"players", func() (int, error) { return migratePlayers(ctx, myDB, pgDB) }},
		{"matches", func() (int, error) { return migrateMatches(ctx, myDB, pgDB) }},
		{"match_events", func() (int, error) { return migrateMatchEvents(ctx, myDB, pgDB) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", s.name, err)
		}
		log.Printf("%-15s  %d rows migrated", s.name, n)
	}

	resetSequences(ctx, pgDB)
	log.Println("migration complete")
}

// --- helpers ---

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}

func nullTime(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	return &n.Time
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// bulkInsert inserts a batch, skipping rows that already exist (idempotent re-runs).
func bulkInsert[T any](ctx context.Context, pgDB *bun.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pgDB.NewInsert().Model(&rows).On("CONFLICT DO NOTHING").Exec(ctx)
	return err
}

// --- per-table migrations ---

func migrateUsers(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx, "SELECT id, username, password FROM users")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.User
	total := 0
	for rows.Next() {
		var r models.User
		if err := rows.Scan(&r.ID, &r.Username, &r.Password); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateTeams(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT id, name, short_name, logo_filename, founded_year, stadium FROM teams")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Team
	total := 0
	for rows.Next() {
		var (
			id           int
			name         string
			shortName    string
			logoFilename sql.NullString
			foundedYear  sql.NullInt64
			stadium      sql.NullString
		)
		if err := rows.Scan(&id, &name, &shortName, &logoFilename, &foundedYear, &stadium); err != nil {
			return total, err
		}
		batch = append(batch, models.Team{
			ID:           id,
			Name:         name,
			ShortName:    shortName,
			LogoFilename: nullStr(logoFilename),
			FoundedYear:  nullInt(foundedYear),
			Stadium:      nullStr(stadium),
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateSeasons(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT id, name, start_date, end_date, is_active FROM seasons")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Season
	total := 0
	for rows.Next() {
		var (
			id        int
			name      string
			startDate time.Time
			endDate   time.Time
			isActive  bool
		)
		if err := rows.Scan(&id, &name, &startDate, &endDate, &isActive); err != nil {
			return total, err
		}
		batch = append(batch, models.Season{
			ID:        id,
			Name:      name,
			StartDate: fmtDate(startDate),
			EndDate:   fmtDate(endDate),
			IsActive:  isActive,
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateSeasonTeams(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		"SELECT season_id, team_id FROM season_teams")
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.SeasonTeam
	total := 0
	for rows.Next() {
		var r models.SeasonTeam
		if err := rows.Scan(&r.SeasonID, &r.TeamID); err != nil {
			return total, err
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migratePlayers(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT id, first_name, last_name, position, jersey_number, age,
		        photo_filename, goals, assists, yellow_cards, red_cards,
		        appearances, clean_sheets, team_id
		 FROM players`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Player
	total := 0
	for rows.Next() {
		var (
			id            int
			firstName     string
			lastName      string
			position      string
			jerseyNumber  sql.NullInt64
			age           sql.NullInt64
			photoFilename sql.NullString
			goals         int
			assists       int
			yellowCards   int
			redCards      int
			appearances   int
			cleanSheets   int
			teamID        int
		)
		if err := rows.Scan(&id, &firstName, &lastName, &position, &jerseyNumber, &age,
			&photoFilename, &goals, &assists, &yellowCards, &redCards,
			&appearances, &cleanSheets, &teamID); err != nil {
			return total, err
		}
		batch = append(batch, models.Player{
			ID:            id,
			FirstName:     firstName,
			LastName:      lastName,
			Position:      position,
			JerseyNumber:  nullInt(jerseyNumber),
			Age:           nullInt(age),
			PhotoFilename: nullStr(photoFilename),
			Goals:         goals,
			Assists:       assists,
			YellowCards:   yellowCards,
			RedCards:      redCards,
			Appearances:   appearances,
			CleanSheets:   cleanSheets,
			TeamID:        teamID,
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateMatches(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT id, matchday, kickoff, home_goals, away_goals, is_played,
		        played_at, season_id, home_team_id, away_team_id
		 FROM matches`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.Match
	total := 0
	for rows.Next() {
		var (
			id         int
			matchday   int
			kickoff    time.Time
			homeGoals  sql.NullInt64
			awayGoals  sql.NullInt64
			isPlayed   bool
			playedAt   sql.NullTime
			seasonID   int
			homeTeamID int
			awayTeamID int
		)
		if err := rows.Scan(&id, &matchday, &kickoff, &homeGoals, &awayGoals,
			&isPlayed, &playedAt, &seasonID, &homeTeamID, &awayTeamID); err != nil {
			return total, err
		}
		batch = append(batch, models.Match{
			ID:         id,
			Matchday:   matchday,
			Kickoff:    kickoff,
			HomeGoals:  nullInt(homeGoals),
			AwayGoals:  nullInt(awayGoals),
			IsPlayed:   isPlayed,
			PlayedAt:   nullTime(playedAt),
			SeasonID:   seasonID,
			HomeTeamID: homeTeamID,
			AwayTeamID: awayTeamID,
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func migrateMatchEvents(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT id, event_type, minute, extra_time, is_penalty, is_own_goal,
		        match_id, player_id, goal_scorer_id, assist_id,
		        player_off_id, player_on_id
		 FROM match_events`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.MatchEvent
	total := 0
	for rows.Next() {
		var (
			id           int
			eventType    string
			minute       int
			extraTime    sql.NullInt64
			isPenalty    bool
			isOwnGoal    bool
			matchID      int
			playerID     int
			goalScorerID sql.NullInt64
			assistID     sql.NullInt64
			playerOffID  sql.NullInt64
			playerOnID   sql.NullInt64
		)
		if err := rows.Scan(&id, &eventType, &minute, &extraTime, &isPenalty, &isOwnGoal,
			&matchID, &playerID, &goalScorerID, &assistID, &playerOffID, &playerOnID); err != nil {
			return total, err
		}
		batch = append(batch, models.MatchEvent{
			ID:           id,
			EventType:    eventType,
			Minute:       minute,
			ExtraTime:    nullInt(extraTime),
			IsPenalty:    isPenalty,
			IsOwnGoal:    isOwnGoal,
			MatchID:      matchID,
			PlayerID:     playerID,
			GoalScorerID: nullInt(goalScorerID),
			AssistID:     nullInt(assistID),
			PlayerOffID:  nullInt(playerOffID),
			PlayerOnID:   nullInt(playerOnID),
		})
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

// resetSequences advances each PG sequence to MAX(id) so new inserts don't conflict.
func resetSequences(ctx context.Context, pgDB *bun.DB) {
	seqs := []struct{ seq, table, col string }{
		{"users_id_seq", "users", "id"},
		{"teams_id_seq", "teams", "id"},
		{"seasons_id_seq", "seasons", "id"},
		{"players_id_seq", "players", "id"},
		{"matches_id_seq", "matches", "id"},
		{"match_events_id_seq", "match_events", "id"},
	}
	for _, s := range seqs {
		q := fmt.Sprintf(
			"SELECT setval('%s', COALESCE((SELECT MAX(%s) FROM %s), 1))",
			s.seq, s.col, s.table,
		)
		if _, err := pgDB.ExecContext(ctx, q); err != nil {
			log.Printf("reset seq %s: %v", s.seq, err)
		}
	}
	log.Println("sequences reset")
}
