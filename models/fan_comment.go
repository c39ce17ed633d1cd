package models

import (
	"time"

	"github.com/uptrace/bun"
)

// FanComment is a public comment left on a team's page.
type FanComment struct {
	bun.BaseModel `bun:"table:fan_comments,alias:fc"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	Author    string    `bun:"author,notnull" json:"author"`
	Body      string    `bun:"body,notnull" json:"body"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`

	TeamID int `bun:"team_id,notnull" json:"teamID"`

	Team *Team `bun:"rel:belongs-to,join:team_id=id" json:"-"`
}
