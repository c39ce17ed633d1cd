package league

import "github.com/Junate-World/talented-league/models"

// formLength bounds the recent-form indicator.
const formLength = 5

// accumulateRecords builds one TeamRecord per participating team from the
// season's played matches. Matches where either side is no longer a season
// participant are ignored for the table, though they stay stored. Points and
// goal difference are derived at the end so they can never disagree with the
// won/drawn and goals columns.
func accumulateRecords(matches []*models.Match, teamIDs []int) map[int]*TeamRecord {
	records := make(map[int]*TeamRecord, len(teamIDs))
	for _, tid := range teamIDs {
		records[tid] = &TeamRecord{TeamID: tid}
	}

	for _, m := range matches {
		home, hok := records[m.HomeTeamID]
		away, aok := records[m.AwayTeamID]
		if !hok || !aok {
			continue
		}
		hg, ag := intOrZero(m.HomeGoals), intOrZero(m.AwayGoals)

		home.Played++
		away.Played++
		home.GoalsFor += hg
		home.GoalsAgainst += ag
		away.GoalsFor += ag
		away.GoalsAgainst += hg

		switch {
		case hg > ag:
			home.Won++
			away.Lost++
			home.fixtures = append(home.fixtures, fixtureResult{away.TeamID, pointsWin, hg, ag})
			away.fixtures = append(away.fixtures, fixtureResult{home.TeamID, 0, ag, hg})
		case ag > hg:
			away.Won++
			home.Lost++
			away.fixtures = append(away.fixtures, fixtureResult{home.TeamID, pointsWin, ag, hg})
			home.fixtures = append(home.fixtures, fixtureResult{away.TeamID, 0, hg, ag})
		default:
			home.Drawn++
			away.Drawn++
			home.fixtures = append(home.fixtures, fixtureResult{away.TeamID, pointsDraw, hg, ag})
			away.fixtures = append(away.fixtures, fixtureResult{home.TeamID, pointsDraw, ag, hg})
		}
	}

	for _, r := range records {
		r.Points = r.Won*pointsWin + r.Drawn*pointsDraw
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	}
	return records
}

// buildFormMap maps each participating team to its recent-form string,
// up to formLength W/D/L characters with the most recent result first.
// Matches must arrive ordered most recent first. A match only one of whose
// sides still participates still feeds that side's form.
func buildFormMap(matches []*models.Match, teamIDs []int) map[int]string {
	participants := make(map[int]bool, len(teamIDs))
	for _, tid := range teamIDs {
		participants[tid] = true
	}

	form := make(map[int][]byte, len(teamIDs))
	for _, m := range matches {
		hg, ag := intOrZero(m.HomeGoals), intOrZero(m.AwayGoals)
		if participants[m.HomeTeamID] && len(form[m.HomeTeamID]) < formLength {
			form[m.HomeTeamID] = append(form[m.HomeTeamID], resultChar(hg, ag))
		}
		if participants[m.AwayTeamID] && len(form[m.AwayTeamID]) < formLength {
			form[m.AwayTeamID] = append(form[m.AwayTeamID], resultChar(ag, hg))
		}
	}

	out := make(map[int]string, len(form))
	for tid, chars := range form {
		out[tid] = string(chars)
	}
	return out
}

func resultChar(scored, conceded int) byte {
	switch {
	case scored > conceded:
		return 'W'
	case scored < conceded:
		return 'L'
	}
	return 'D'
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
