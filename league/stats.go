package league

import "github.com/Junate-World/talented-league/models"

// statDelta holds the per-player counter changes one application of a
// recorded result produces. Reverting a result applies the same delta with a
// negative sign, so increment and decrement logic cannot drift apart.
type statDelta struct {
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	Appearances int
	CleanSheets int
}

func (d statDelta) isZero() bool {
	return d == statDelta{}
}

// matchContext is the slice of a match the stat derivation needs: the two
// sides and the recorded score.
type matchContext struct {
	HomeTeamID int
	AwayTeamID int
	HomeGoals  int
	AwayGoals  int
}

// matchStatDeltas derives every per-player counter delta for one recorded
// result: goals and assists from goal events (own goals never credit the
// scorer), cards from card events, one appearance per distinct participant,
// and a clean sheet for each participating goalkeeper or defender whose team
// conceded zero. Players missing from the map (since deleted) contribute no
// delta. The players map decides clean-sheet eligibility by the player's
// current position and team.
func matchStatDeltas(mc matchContext, events []*models.MatchEvent, players map[int]*models.Player) map[int]statDelta {
	deltas := make(map[int]statDelta)

	for _, ev := range events {
		switch ev.EventType {
		case models.EventGoal:
			if scorer := ev.ScorerID(); scorer != 0 && !ev.IsOwnGoal {
				d := deltas[scorer]
				d.Goals++
				deltas[scorer] = d
			}
			if ev.AssistID != nil {
				d := deltas[*ev.AssistID]
				d.Assists++
				deltas[*ev.AssistID] = d
			}
		case models.EventYellow:
			d := deltas[ev.PlayerID]
			d.YellowCards++
			deltas[ev.PlayerID] = d
		case models.EventRed:
			d := deltas[ev.PlayerID]
			d.RedCards++
			deltas[ev.PlayerID] = d
		}
	}

	for pid := range participants(events) {
		d := deltas[pid]
		d.Appearances++

		if p, ok := players[pid]; ok && p.IsDefensive() {
			conceded := -1
			switch p.TeamID {
			case mc.HomeTeamID:
				conceded = mc.AwayGoals
			case mc.AwayTeamID:
				conceded = mc.HomeGoals
			}
			if conceded == 0 {
				d.CleanSheets++
			}
		}

		deltas[pid] = d
	}

	return deltas
}

// participants returns the distinct ids of every player referenced by any
// event: primary player, scorer, assist provider, and both substitution
// sides.
func participants(events []*models.MatchEvent) map[int]bool {
	ids := make(map[int]bool)
	add := func(id *int) {
		if id != nil && *id != 0 {
			ids[*id] = true
		}
	}
	for _, ev := range events {
		if ev.PlayerID != 0 {
			ids[ev.PlayerID] = true
		}
		add(ev.GoalScorerID)
		add(ev.AssistID)
		add(ev.PlayerOffID)
		add(ev.PlayerOnID)
	}
	return ids
}

// applyDeltas adds sign*delta to each player's counters. Counters clamp at
// zero on the way down so a revert tolerates previously inconsistent data.
// Returns the ids of players actually mutated.
func applyDeltas(players map[int]*models.Player, deltas map[int]statDelta, sign int) []int {
	touched := make([]int, 0, len(deltas))
	for pid, d := range deltas {
		p, ok := players[pid]
		if !ok || d.isZero() {
			continue
		}
		p.Goals = addClamped(p.Goals, sign*d.Goals)
		p.Assists = addClamped(p.Assists, sign*d.Assists)
		p.YellowCards = addClamped(p.YellowCards, sign*d.YellowCards)
		p.RedCards = addClamped(p.RedCards, sign*d.RedCards)
		p.Appearances = addClamped(p.Appearances, sign*d.Appearances)
		p.CleanSheets = addClamped(p.CleanSheets, sign*d.CleanSheets)
		touched = append(touched, pid)
	}
	return touched
}

func addClamped(cur, delta int) int {
	v := cur + delta
	if v < 0 {
		return 0
	}
	return v
}
