package models

import "github.com/uptrace/bun"

// Match event types.
const (
	EventGoal         = "goal"
	EventYellow       = "yellow"
	EventRed          = "red"
	EventSubstitution = "substitution"
)

// MatchEvent is one timeline entry of a match: a goal, a card, or a
// substitution. PlayerID is always the primary player of the event; for
// goals the scorer also lives in GoalScorerID so an own goal can carry a
// scorer from the conceding side.
type MatchEvent struct {
	bun.BaseModel `bun:"table:match_events,alias:e"`

	ID        int    `bun:"id,pk,autoincrement" json:"id"`
	EventType string `bun:"event_type,notnull" json:"eventType"`
	Minute    int    `bun:"minute,notnull" json:"minute"`
	ExtraTime *int   `bun:"extra_time" json:"extraTime,omitempty"`

	IsPenalty bool `bun:"is_penalty,notnull,default:false" json:"isPenalty"`
	IsOwnGoal bool `bun:"is_own_goal,notnull,default:false" json:"isOwnGoal"`

	MatchID      int  `bun:"match_id,notnull" json:"matchID"`
	PlayerID     int  `bun:"player_id,notnull" json:"playerID"`
	GoalScorerID *int `bun:"goal_scorer_id" json:"goalScorerID,omitempty"`
	AssistID     *int `bun:"assist_id" json:"assistID,omitempty"`
	PlayerOffID  *int `bun:"player_off_id" json:"playerOffID,omitempty"`
	PlayerOnID   *int `bun:"player_on_id" json:"playerOnID,omitempty"`

	Match *Match `bun:"rel:belongs-to,join:match_id=id" json:"-"`
}

// ScorerID returns the scoring player for a goal event, preferring the
// explicit goal scorer over the primary player.
func (e *MatchEvent) ScorerID() int {
	if e.GoalScorerID != nil {
		return *e.GoalScorerID
	}
	return e.PlayerID
}
