package league

import (
	"testing"

	"github.com/Junate-World/talented-league/models"
)

func TestNormalizeEventGoal(t *testing.T) {
	ev := normalizeEvent(7, EventInput{
		EventType:    models.EventGoal,
		Minute:       23,
		GoalScorerID: 4,
		AssistID:     9,
		IsPenalty:    true,
	})
	if ev == nil {
		t.Fatal("valid goal dropped")
	}
	if ev.MatchID != 7 || ev.PlayerID != 4 || ev.ScorerID() != 4 {
		t.Fatalf("scorer not resolved: %+v", ev)
	}
	if ev.AssistID == nil || *ev.AssistID != 9 {
		t.Fatalf("assist not carried: %+v", ev)
	}
	if !ev.IsPenalty || ev.IsOwnGoal {
		t.Fatalf("flags wrong: %+v", ev)
	}
}

func TestNormalizeEventGoalScorerFallsBackToPlayer(t *testing.T) {
	ev := normalizeEvent(1, EventInput{EventType: models.EventGoal, Minute: 55, PlayerID: 11})
	if ev == nil || ev.ScorerID() != 11 {
		t.Fatalf("player field should resolve the scorer, got %+v", ev)
	}
}

func TestNormalizeEventDrops(t *testing.T) {
	cases := []struct {
		name string
		in   EventInput
	}{
		{"goal without any scorer", EventInput{EventType: models.EventGoal, Minute: 10}},
		{"yellow without player", EventInput{EventType: models.EventYellow, Minute: 30}},
		{"red without player", EventInput{EventType: models.EventRed, Minute: 70}},
		{"sub missing player on", EventInput{EventType: models.EventSubstitution, Minute: 60, PlayerOffID: 3}},
		{"sub missing player off", EventInput{EventType: models.EventSubstitution, Minute: 60, PlayerOnID: 4}},
		{"unknown type", EventInput{EventType: "var-review", Minute: 45, PlayerID: 1}},
		{"empty type", EventInput{Minute: 5, PlayerID: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if ev := normalizeEvent(1, tc.in); ev != nil {
				t.Fatalf("malformed event kept: %+v", ev)
			}
		})
	}
}

func TestNormalizeEventsKeepsOrderAndDropsSilently(t *testing.T) {
	extra := 3
	inputs := []EventInput{
		{EventType: models.EventGoal, Minute: 12, GoalScorerID: 1},
		{EventType: models.EventGoal, Minute: 40},                             // dropped
		{EventType: models.EventSubstitution, Minute: 46, PlayerOffID: 2, PlayerOnID: 3},
		{EventType: models.EventRed, Minute: 90, ExtraTime: &extra, PlayerID: 3},
	}
	events := normalizeEvents(5, inputs)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].EventType != models.EventGoal || events[1].EventType != models.EventSubstitution || events[2].EventType != models.EventRed {
		t.Fatalf("order not preserved: %v %v %v",
			events[0].EventType, events[1].EventType, events[2].EventType)
	}
	if events[2].ExtraTime == nil || *events[2].ExtraTime != 3 {
		t.Fatalf("extra time lost: %+v", events[2])
	}
	for _, ev := range events {
		if ev.MatchID != 5 {
			t.Fatalf("match id not stamped: %+v", ev)
		}
	}
}
