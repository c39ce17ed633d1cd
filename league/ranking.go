package league

import "sort"

// TeamRecord is one team's accumulated record for a season, plus the
// per-fixture results needed to resolve head-to-head ties.
type TeamRecord struct {
	TeamID         int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string

	fixtures []fixtureResult
}

// fixtureResult is one played fixture from the owning team's perspective.
type fixtureResult struct {
	OpponentID   int
	Points       int
	GoalsFor     int
	GoalsAgainst int
}

// Points per result.
const (
	pointsWin  = 3
	pointsDraw = 1
)

// Rank orders records into final table order: points, goal difference,
// goals for, then head-to-head within tied clusters, team id as the last
// resort. The head-to-head re-rank is scoped to each maximal run of teams
// sharing identical (points, GD, GF): results against teams outside the run
// never influence the order inside it.
func Rank(records []*TeamRecord) []*TeamRecord {
	ordered := make([]*TeamRecord, len(records))
	copy(ordered, records)

	sort.Slice(ordered, func(i, j int) bool {
		return primaryLess(ordered[i], ordered[j])
	})

	result := make([]*TeamRecord, 0, len(ordered))
	for i := 0; i < len(ordered); {
		j := i + 1
		for j < len(ordered) && sameTier(ordered[i], ordered[j]) {
			j++
		}
		group := ordered[i:j]
		if len(group) > 1 {
			group = headToHeadRank(group)
		}
		result = append(result, group...)
		i = j
	}
	return result
}

func primaryLess(a, b *TeamRecord) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.TeamID < b.TeamID
}

func sameTier(a, b *TeamRecord) bool {
	return a.Points == b.Points &&
		a.GoalDifference == b.GoalDifference &&
		a.GoalsFor == b.GoalsFor
}

// headToHeadRank orders a tied group by points, goal difference and goals
// scored accumulated only over fixtures between group members.
func headToHeadRank(group []*TeamRecord) []*TeamRecord {
	members := make(map[int]bool, len(group))
	for _, r := range group {
		members[r.TeamID] = true
	}

	type h2h struct{ points, goalDiff, goalsFor int }
	table := make(map[int]h2h, len(group))
	for _, r := range group {
		h := h2h{}
		for _, f := range r.fixtures {
			if members[f.OpponentID] {
				h.points += f.Points
				h.goalDiff += f.GoalsFor - f.GoalsAgainst
				h.goalsFor += f.GoalsFor
			}
		}
		table[r.TeamID] = h
	}

	ranked := make([]*TeamRecord, len(group))
	copy(ranked, group)
	sort.Slice(ranked, func(i, j int) bool {
		a, b := table[ranked[i].TeamID], table[ranked[j].TeamID]
		if a.points != b.points {
			return a.points > b.points
		}
		if a.goalDiff != b.goalDiff {
			return a.goalDiff > b.goalDiff
		}
		if a.goalsFor != b.goalsFor {
			return a.goalsFor > b.goalsFor
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})
	return ranked
}
