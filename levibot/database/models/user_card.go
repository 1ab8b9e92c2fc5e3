// models/user_card.go
package models

import (
	"time"

	"github.com/uptrace/bun"
)

type UserCard struct {
	bun.BaseModel `bun:"table:user_cards,alias:uc"`

	ID           string    `bun:"id,pk,type:text"`
	UserID       string    `bun:"user_id,notnull"`
	CardID       string    `bun:"card_id,notnull"`
	Level        int       `bun:"level,notnull,default:1"`
	Exp          int       `bun:"exp,notnull,default:0"`
	Nickname     string    `bun:"nickname,notnull,default:''"`
	InDeck       bool      `bun:"in_deck,notnull,default:false"`
	DeckPosition *int      `bun:"deck_position"`
	Favorite     bool      `bun:"favorite,notnull,default:false"`
	ObtainedAt   time.Time `bun:"obtained_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`

	Card *Card `bun:"rel:belongs-to,join:card_id=id"`
}

// Position returns the deck slot, or -1 for cards outside the deck.
func (uc *UserCard) Position() int {
	if !uc.InDeck || uc.DeckPosition == nil {
		return -1
	}
	return *uc.DeckPosition
}

// DisplayName prefers the nickname when one is set.
func (uc *UserCard) DisplayName() string {
	if uc.Nickname != "" {
		return uc.Nickname
	}
	if uc.Card != nil {
		return uc.Card.Name
	}
	return uc.CardID
}
