package league

import (
	"testing"
	"time"

	"github.com/Junate-World/talented-league/models"
)

func playedMatch(id, home, away, hg, ag int, kickoff time.Time) *models.Match {
	return &models.Match{
		ID:         id,
		SeasonID:   1,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeGoals:  &hg,
		AwayGoals:  &ag,
		IsPlayed:   true,
		Kickoff:    kickoff,
	}
}

func rankTeamIDs(matches []*models.Match, teamIDs []int) []int {
	records := accumulateRecords(matches, teamIDs)
	all := make([]*TeamRecord, 0, len(records))
	for _, tid := range teamIDs {
		all = append(all, records[tid])
	}
	ranked := Rank(all)
	ids := make([]int, len(ranked))
	for i, r := range ranked {
		ids[i] = r.TeamID
	}
	return ids
}

func TestRankPrimaryOrdering(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 2, 3, 0, kick),             // team 1 wins big
		playedMatch(2, 3, 4, 1, 0, kick.AddDate(0, 0, 1)), // team 3 wins small
		playedMatch(3, 2, 4, 2, 2, kick.AddDate(0, 0, 2)), // draw
	}
	got := rankTeamIDs(matches, []int{1, 2, 3, 4})
	// 1: 3pts/+3. 3: 3pts/+1. Then 4 (1pt, GD -1) over 2 (1pt, GD -3).
	assertOrder(t, got, []int{1, 3, 4, 2})
}

// Two teams tied on points, goal difference and goals for, with no fixture
// between them: the tie resolves on team id after an empty head-to-head.
func TestRankFullTieWithoutHeadToHeadFixture(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 5, 10, 2, 0, kick),
		playedMatch(2, 3, 11, 2, 0, kick.AddDate(0, 0, 1)),
	}
	got := rankTeamIDs(matches, []int{3, 5, 10, 11})
	// Teams 3 and 5 are identical on every key and never met; lower id first.
	assertOrder(t, got[:2], []int{3, 5})
}

// The league-table scenario: X 2-1 Y, then Y 0-0 Z. X tops the table; Z edges
// Y on goal difference since they never played each other.
func TestRankTwoMatchScenario(t *testing.T) {
	const x, y, z = 1, 2, 3
	kick := time.Date(2025, 9, 6, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, x, y, 2, 1, kick),
		playedMatch(2, y, z, 0, 0, kick.AddDate(0, 0, 7)),
	}
	records := accumulateRecords(matches, []int{x, y, z})

	if records[x].Points != 3 || records[x].GoalDifference != 1 {
		t.Fatalf("team X: got %d pts / %+d GD, want 3 / +1", records[x].Points, records[x].GoalDifference)
	}
	if records[y].Points != 1 || records[z].Points != 1 {
		t.Fatalf("teams Y/Z: got %d and %d pts, want 1 each", records[y].Points, records[z].Points)
	}

	got := rankTeamIDs(matches, []int{x, y, z})
	// Z: 1 pt, GD 0. Y: 1 pt, GD -1. No head-to-head needed.
	assertOrder(t, got, []int{x, z, y})
}

// Three teams tied on every primary key resolve by head-to-head records
// scoped to fixtures among themselves; results against the fourth team must
// not leak into the re-rank even though they differ.
func TestRankHeadToHeadCluster(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return kick.AddDate(0, 0, n) }
	matches := []*models.Match{
		playedMatch(1, 2, 1, 3, 0, day(0)),
		playedMatch(2, 1, 3, 2, 0, day(1)),
		playedMatch(3, 3, 2, 1, 0, day(2)),
		playedMatch(4, 2, 4, 3, 2, day(3)),
		playedMatch(5, 1, 4, 4, 0, day(4)),
		playedMatch(6, 3, 4, 5, 1, day(5)),
	}
	// Totals for 1, 2, 3 are identical: 6 pts, GF 6, GD +3.
	// Head-to-head among {1,2,3} only: team 2 has +2, teams 1 and 3 both
	// have -1 with GF 2 vs 1. Plain id order (and a naive head-to-head over
	// all fixtures, which collapses back to the tied totals) would give
	// 1,2,3 instead.
	got := rankTeamIDs(matches, []int{1, 2, 3, 4})
	assertOrder(t, got, []int{2, 1, 3, 4})
}

// A team outside the tied tier keeps its primary-sort position regardless of
// its head-to-head record against tier members.
func TestRankHeadToHeadScopedToTier(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return kick.AddDate(0, 0, n) }
	matches := []*models.Match{
		playedMatch(1, 1, 9, 0, 1, day(0)),
		playedMatch(2, 2, 9, 0, 1, day(1)),
		playedMatch(3, 9, 5, 0, 4, day(2)),
		playedMatch(4, 9, 6, 0, 4, day(3)),
		playedMatch(5, 1, 5, 3, 0, day(4)),
		playedMatch(6, 2, 6, 3, 0, day(5)),
		playedMatch(7, 2, 1, 1, 0, day(6)),
	}
	// Teams 2 and 9 both finish on 6 pts, but with different goal
	// difference they are not a tied cluster: team 9's head-to-head win
	// over team 2 must not lift it past team 2. Teams 5 and 6 tie on every
	// primary key with no mutual fixture, so their head-to-head is empty
	// and the lower id goes first.
	got := rankTeamIDs(matches, []int{1, 2, 5, 6, 9})
	assertOrder(t, got, []int{2, 9, 5, 6, 1})
}

func TestRankDeterministic(t *testing.T) {
	kick := time.Date(2025, 8, 1, 15, 0, 0, 0, time.UTC)
	matches := []*models.Match{
		playedMatch(1, 1, 2, 1, 1, kick),
		playedMatch(2, 3, 4, 2, 2, kick.AddDate(0, 0, 1)),
		playedMatch(3, 1, 3, 0, 0, kick.AddDate(0, 0, 2)),
	}
	first := rankTeamIDs(matches, []int{1, 2, 3, 4})
	for i := 0; i < 20; i++ {
		if got := rankTeamIDs(matches, []int{4, 3, 2, 1}); !equalInts(got, first) {
			t.Fatalf("ordering not stable: %v vs %v", got, first)
		}
	}
}

func assertOrder(t *testing.T, got, want []int) {
	t.Helper()
	if !equalInts(got, want) {
		t.Fatalf("ranking order = %v, want %v", got, want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
