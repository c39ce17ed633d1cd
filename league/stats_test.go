package league

import (
	"testing"

	"github.com/Junate-World/talented-league/models"
)

const (
	homeTeam = 10
	awayTeam = 20
)

func testPlayers() map[int]*models.Player {
	return map[int]*models.Player{
		1: {ID: 1, Position: models.PositionForward, TeamID: homeTeam},
		2: {ID: 2, Position: models.PositionMidfielder, TeamID: homeTeam},
		3: {ID: 3, Position: models.PositionGoalkeeper, TeamID: homeTeam},
		4: {ID: 4, Position: models.PositionDefender, TeamID: awayTeam},
		5: {ID: 5, Position: models.PositionForward, TeamID: awayTeam},
		6: {ID: 6, Position: models.PositionDefender, TeamID: homeTeam},
	}
}

func goalEvent(scorer int, assist *int, ownGoal bool) *models.MatchEvent {
	return &models.MatchEvent{
		EventType:    models.EventGoal,
		PlayerID:     scorer,
		GoalScorerID: &scorer,
		AssistID:     assist,
		IsOwnGoal:    ownGoal,
	}
}

func cardEvent(kind string, player int) *models.MatchEvent {
	return &models.MatchEvent{EventType: kind, PlayerID: player}
}

func subEvent(off, on int) *models.MatchEvent {
	return &models.MatchEvent{
		EventType:   models.EventSubstitution,
		PlayerID:    off,
		PlayerOffID: &off,
		PlayerOnID:  &on,
	}
}

func TestMatchStatDeltasBasics(t *testing.T) {
	players := testPlayers()
	assist := 2
	events := []*models.MatchEvent{
		goalEvent(1, &assist, false),
		goalEvent(1, nil, false),
		cardEvent(models.EventYellow, 5),
		cardEvent(models.EventRed, 5),
		subEvent(2, 6),
	}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 2, AwayGoals: 0}
	deltas := matchStatDeltas(mc, events, players)

	if d := deltas[1]; d.Goals != 2 || d.Appearances != 1 {
		t.Fatalf("scorer delta = %+v, want 2 goals, 1 appearance", d)
	}
	if d := deltas[2]; d.Assists != 1 || d.Appearances != 1 {
		t.Fatalf("assister delta = %+v, want 1 assist, 1 appearance", d)
	}
	if d := deltas[5]; d.YellowCards != 1 || d.RedCards != 1 || d.Appearances != 1 {
		t.Fatalf("carded delta = %+v, want one of each card, 1 appearance", d)
	}
	// Home conceded zero: the keeper (3) did not appear, defender 6 came on.
	if d := deltas[6]; d.CleanSheets != 1 || d.Appearances != 1 {
		t.Fatalf("sub-on defender delta = %+v, want clean sheet + appearance", d)
	}
	if _, ok := deltas[3]; ok {
		t.Fatal("keeper without any event involvement must get no delta")
	}
	// Away defender 4 did not appear either.
	if _, ok := deltas[4]; ok {
		t.Fatal("non-participant must get no delta")
	}
}

func TestMatchStatDeltasOwnGoalExclusion(t *testing.T) {
	players := testPlayers()
	// Defender 4 puts through his own net; counts toward the home score,
	// never toward his personal goals.
	events := []*models.MatchEvent{goalEvent(4, nil, true)}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 1, AwayGoals: 0}
	deltas := matchStatDeltas(mc, events, players)

	d := deltas[4]
	if d.Goals != 0 {
		t.Fatalf("own goal credited to scorer: %+v", d)
	}
	if d.Appearances != 1 {
		t.Fatalf("own-goal scorer still appeared: %+v", d)
	}
	if d.CleanSheets != 0 {
		t.Fatalf("defender on the conceding side got a clean sheet: %+v", d)
	}
}

func TestMatchStatDeltasAppearanceDedup(t *testing.T) {
	players := testPlayers()
	assist := 1
	events := []*models.MatchEvent{
		goalEvent(1, nil, false),
		goalEvent(1, nil, false),
		goalEvent(2, &assist, false),
		cardEvent(models.EventYellow, 1),
	}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 3, AwayGoals: 1}
	deltas := matchStatDeltas(mc, events, players)
	if d := deltas[1]; d.Appearances != 1 {
		t.Fatalf("player in 4 events got %d appearances, want 1", d.Appearances)
	}
}

func TestApplyThenRevertRestoresBaseline(t *testing.T) {
	players := testPlayers()
	players[1].Goals = 7
	players[2].Assists = 3
	players[3].CleanSheets = 2
	players[5].YellowCards = 1

	baseline := snapshot(players)

	assist := 2
	events := []*models.MatchEvent{
		goalEvent(1, &assist, false),
		cardEvent(models.EventYellow, 5),
		cardEvent(models.EventRed, 4),
		subEvent(3, 6),
	}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 1, AwayGoals: 0}
	deltas := matchStatDeltas(mc, events, players)

	applyDeltas(players, deltas, 1)
	applyDeltas(players, deltas, -1)

	assertCounters(t, players, baseline)
}

// Recording A, reverting A, then recording B must land on the same counters
// as recording B alone.
func TestRevertThenReapplyMatchesFreshRecording(t *testing.T) {
	assist := 2
	resultA := []*models.MatchEvent{
		goalEvent(1, &assist, false),
		goalEvent(1, nil, false),
		cardEvent(models.EventYellow, 4),
	}
	mcA := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 2, AwayGoals: 0}

	resultB := []*models.MatchEvent{
		goalEvent(1, nil, false),
		goalEvent(5, nil, false),
		subEvent(2, 6),
	}
	mcB := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 1, AwayGoals: 1}

	corrected := testPlayers()
	applyDeltas(corrected, matchStatDeltas(mcA, resultA, corrected), 1)
	applyDeltas(corrected, matchStatDeltas(mcA, resultA, corrected), -1)
	applyDeltas(corrected, matchStatDeltas(mcB, resultB, corrected), 1)

	fresh := testPlayers()
	applyDeltas(fresh, matchStatDeltas(mcB, resultB, fresh), 1)

	assertCounters(t, corrected, snapshot(fresh))
}

func TestApplyDeltasClampsAtZero(t *testing.T) {
	players := testPlayers()
	// Counters already inconsistent: nothing recorded, yet we revert.
	events := []*models.MatchEvent{goalEvent(1, nil, false)}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 1, AwayGoals: 2}
	applyDeltas(players, matchStatDeltas(mc, events, players), -1)

	if players[1].Goals != 0 || players[1].Appearances != 0 {
		t.Fatalf("counters went negative: goals=%d appearances=%d",
			players[1].Goals, players[1].Appearances)
	}
}

func TestApplyDeltasSkipsUnknownPlayers(t *testing.T) {
	players := testPlayers()
	ghost := 999
	events := []*models.MatchEvent{goalEvent(ghost, nil, false)}
	mc := matchContext{HomeTeamID: homeTeam, AwayTeamID: awayTeam, HomeGoals: 1, AwayGoals: 0}
	touched := applyDeltas(players, matchStatDeltas(mc, events, players), 1)
	if len(touched) != 0 {
		t.Fatalf("deleted player mutated something: touched=%v", touched)
	}
}

func snapshot(players map[int]*models.Player) map[int]models.Player {
	out := make(map[int]models.Player, len(players))
	for id, p := range players {
		out[id] = *p
	}
	return out
}

func assertCounters(t *testing.T, got map[int]*models.Player, want map[int]models.Player) {
	t.Helper()
	for id, w := range want {
		g := got[id]
		if g.Goals != w.Goals || g.Assists != w.Assists ||
			g.YellowCards != w.YellowCards || g.RedCards != w.RedCards ||
			g.Appearances != w.Appearances || g.CleanSheets != w.CleanSheets {
			t.Fatalf("player %d counters = %+v, want %+v", id, *g, w)
		}
	}
}
