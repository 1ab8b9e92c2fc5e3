package models

import (
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/uptrace/bun"
)

type CardAbility struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Effect      string `json:"effect" bson:"effect"`
}

type Card struct {
	bun.BaseModel `bun:"table:cards,alias:c"`

	ID        string       `bun:"id,pk,type:text" json:"id"`
	Name      string       `bun:"name,notnull" json:"name"`
	Anime     string       `bun:"anime,notnull,default:''" json:"anime"`
	ImageURL  string       `bun:"image_url,notnull,default:''" json:"image_url"`
	Rarity    string       `bun:"rarity,notnull" json:"rarity"`
	Type      string       `bun:"type,notnull" json:"type"`
	Attack    int          `bun:"attack,notnull,default:50" json:"attack"`
	Defense   int          `bun:"defense,notnull,default:50" json:"defense"`
	Speed     int          `bun:"speed,notnull,default:50" json:"speed"`
	Ability   *CardAbility `bun:"ability,type:jsonb" json:"ability,omitempty"`
	SpawnRate int          `bun:"spawn_rate,notnull,default:10" json:"spawn_rate"`
	CreatedAt time.Time    `bun:"created_at,notnull,default:current_timestamp" json:"-"`
	UpdatedAt time.Time    `bun:"updated_at,notnull,default:current_timestamp" json:"-"`
}

// Tier returns the parsed rarity, defaulting to common for unknown values.
func (c *Card) Tier() rarity.Tier {
	if t, ok := rarity.Parse(c.Rarity); ok {
		return t
	}
	return rarity.Common
}
