package battle

import (
	"errors"
	"time"
)

type Side string

const (
	Challenger Side = "challenger"
	Opponent   Side = "opponent"
)

func (s Side) Other() Side {
	if s == Challenger {
		return Opponent
	}
	return Challenger
}

type Move string

const (
	MoveAttack Move = "attack"
	MoveDefend Move = "defend"
	MoveHeal   Move = "heal"
	MoveWeaken Move = "weaken"
)

const (
	ArchetypeAttack  = "attack"
	ArchetypeDefense = "defense"
	ArchetypeBalance = "balance"
	ArchetypeSupport = "support"
)

const (
	MaxHP       = 100
	MaxRounds   = 20
	MaxDeckSize = 6
)

var ErrEmptyDeck = errors.New("both sides need at least one card")

// Fighter is one deck card with its level-scaled stats.
type Fighter struct {
	OwnedCardID string
	Name        string
	Archetype   string
	Attack      int
	Defense     int
	Speed       int
}

// NewFighter scales the catalog base stats by the owned card level.
func NewFighter(ownedCardID, name, archetype string, level, attack, defense, speed int) Fighter {
	return Fighter{
		OwnedCardID: ownedCardID,
		Name:        name,
		Archetype:   archetype,
		Attack:      ScaleStat(attack, level),
		Defense:     ScaleStat(defense, level),
		Speed:       ScaleStat(speed, level),
	}
}

type Turn struct {
	Round    int       `json:"round"`
	Side     Side      `json:"player"`
	CardName string    `json:"card_name"`
	Move     Move      `json:"move"`
	Damage   int       `json:"damage"`
	Healed   int       `json:"healed,omitempty"`
	Target   string    `json:"target"`
	At       time.Time `json:"timestamp"`
}

type Result struct {
	Winner       Side
	Turns        []Turn
	ChallengerHP int
	OpponentHP   int
	Rounds       int
	TimedOut     bool
}

// ScaleStat applies the 5% per level growth, floored: base*(1+0.05*(level-1)).
func ScaleStat(base, level int) int {
	if level < 1 {
		level = 1
	}
	return base * (19 + level) / 20
}
