package models

import "github.com/uptrace/bun"

// Team represents a football club in the league.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID           int     `bun:"id,pk,autoincrement" json:"id"`
	Name         string  `bun:"name,notnull,unique" json:"name"`
	ShortName    string  `bun:"short_name,notnull" json:"shortName"`
	LogoFilename *string `bun:"logo_filename" json:"logo,omitempty"`
	FoundedYear  *int    `bun:"founded_year" json:"foundedYear,omitempty"`
	Stadium      *string `bun:"stadium" json:"stadium,omitempty"`
}
