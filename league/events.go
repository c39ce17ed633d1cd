package league

import "github.com/Junate-World/talented-league/models"

// EventInput is one raw timeline entry submitted alongside a result.
// Zero-valued player ids mean "not provided".
type EventInput struct {
	EventType    string `json:"eventType"`
	Minute       int    `json:"minute"`
	ExtraTime    *int   `json:"extraTime,omitempty"`
	PlayerID     int    `json:"playerID,omitempty"`
	GoalScorerID int    `json:"goalScorerID,omitempty"`
	AssistID     int    `json:"assistID,omitempty"`
	IsPenalty    bool   `json:"isPenalty,omitempty"`
	IsOwnGoal    bool   `json:"isOwnGoal,omitempty"`
	PlayerOffID  int    `json:"playerOffID,omitempty"`
	PlayerOnID   int    `json:"playerOnID,omitempty"`
}

// normalizeEvent turns raw input into a storable MatchEvent, or nil when the
// input cannot identify the players its type requires. Malformed entries are
// skipped so partial event data never blocks recording a score.
func normalizeEvent(matchID int, in EventInput) *models.MatchEvent {
	ev := &models.MatchEvent{
		MatchID:   matchID,
		EventType: in.EventType,
		Minute:    in.Minute,
		ExtraTime: in.ExtraTime,
	}

	switch in.EventType {
	case models.EventGoal:
		scorer := in.GoalScorerID
		if scorer == 0 {
			scorer = in.PlayerID
		}
		if scorer == 0 {
			return nil
		}
		ev.PlayerID = scorer
		ev.GoalScorerID = optID(scorer)
		ev.AssistID = optID(in.AssistID)
		ev.IsPenalty = in.IsPenalty
		ev.IsOwnGoal = in.IsOwnGoal
	case models.EventYellow, models.EventRed:
		if in.PlayerID == 0 {
			return nil
		}
		ev.PlayerID = in.PlayerID
	case models.EventSubstitution:
		if in.PlayerOffID == 0 || in.PlayerOnID == 0 {
			return nil
		}
		ev.PlayerID = in.PlayerOffID
		ev.PlayerOffID = optID(in.PlayerOffID)
		ev.PlayerOnID = optID(in.PlayerOnID)
	default:
		return nil
	}

	return ev
}

// normalizeEvents converts the submitted list, dropping unusable entries.
func normalizeEvents(matchID int, inputs []EventInput) []*models.MatchEvent {
	events := make([]*models.MatchEvent, 0, len(inputs))
	for _, in := range inputs {
		if ev := normalizeEvent(matchID, in); ev != nil {
			events = append(events, ev)
		}
	}
	return events
}

func optID(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
