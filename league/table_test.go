package league

import (
	"testing"
	"time"

	"github.com/Junate-World/talented-league/models"
)

func TestAccumulateRecordsPointsLaw(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 2, 4, 1, kick),
		playedMatch(2, 2, 3, 2, 2, kick.AddDate(0, 0, 7)),
		playedMatch(3, 3, 1, 0, 1, kick.AddDate(0, 0, 14)),
		playedMatch(4, 2, 1, 3, 3, kick.AddDate(0, 0, 21)),
	}
	records := accumulateRecords(matches, []int{1, 2, 3})

	for tid, r := range records {
		if r.Points != r.Won*3+r.Drawn {
			t.Fatalf("team %d: points %d != 3*%d + %d", tid, r.Points, r.Won, r.Drawn)
		}
		if r.GoalDifference != r.GoalsFor-r.GoalsAgainst {
			t.Fatalf("team %d: GD %d != %d - %d", tid, r.GoalDifference, r.GoalsFor, r.GoalsAgainst)
		}
		if r.Played != r.Won+r.Drawn+r.Lost {
			t.Fatalf("team %d: played %d != %d+%d+%d", tid, r.Played, r.Won, r.Drawn, r.Lost)
		}
	}

	if r := records[1]; r.Played != 3 || r.Won != 2 || r.Drawn != 1 || r.GoalsFor != 8 || r.GoalsAgainst != 4 {
		t.Fatalf("team 1 record = %+v", *r)
	}
}

// A match referencing a team that left the season stays stored but counts
// for nothing in the table.
func TestAccumulateRecordsIgnoresNonParticipants(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 2, 2, 0, kick),
		playedMatch(2, 1, 99, 5, 0, kick.AddDate(0, 0, 1)), // 99 withdrew
	}
	records := accumulateRecords(matches, []int{1, 2})

	if r := records[1]; r.Played != 1 || r.GoalsFor != 2 {
		t.Fatalf("withdrawn opponent leaked into the table: %+v", *r)
	}
	if _, ok := records[99]; ok {
		t.Fatal("non-participant got a record")
	}
}

func TestAccumulateRecordsZeroMatchTeams(t *testing.T) {
	records := accumulateRecords(nil, []int{1, 2})
	for tid, r := range records {
		if r.Played != 0 || r.Points != 0 || r.Form != "" {
			t.Fatalf("team %d should have an all-zero record: %+v", tid, *r)
		}
	}
}

func TestBuildFormMapRecencyAndBound(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	// Seven results for team 1, most recent first (the order the standings
	// engine queries in): W L D W W L W reading backwards in time.
	var matches []*models.Match
	scores := []struct{ hg, ag int }{
		{2, 0}, // most recent: W
		{0, 1}, // L
		{1, 1}, // D
		{3, 2}, // W
		{2, 1}, // W
		{0, 3}, // L
		{4, 0}, // W
	}
	for i, sc := range scores {
		matches = append(matches, playedMatch(100+i, 1, 2, sc.hg, sc.ag, kick.AddDate(0, 0, -i)))
	}

	form := buildFormMap(matches, []int{1, 2})

	if form[1] != "WLDWW" {
		t.Fatalf("team 1 form = %q, want WLDWW", form[1])
	}
	if form[2] != "LWDLL" {
		t.Fatalf("team 2 form = %q, want LWDLL", form[2])
	}
	for tid, f := range form {
		if len(f) > formLength {
			t.Fatalf("team %d form %q longer than %d", tid, f, formLength)
		}
	}
}

// A match against a withdrawn team does not feed the table, but it still
// happened: it feeds the remaining side's form.
func TestBuildFormMapSingleParticipantMatch(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 99, 1, 0, kick),
	}
	form := buildFormMap(matches, []int{1, 2})
	if form[1] != "W" {
		t.Fatalf("team 1 form = %q, want W", form[1])
	}
	if _, ok := form[99]; ok {
		t.Fatal("withdrawn team got a form entry")
	}
}

func TestBuildFormMapFewerThanFiveMatches(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 2, 0, 0, kick),
	}
	form := buildFormMap(matches, []int{1, 2})
	if form[1] != "D" || form[2] != "D" {
		t.Fatalf("forms = %q / %q, want single D each", form[1], form[2])
	}
}
