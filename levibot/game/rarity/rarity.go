package rarity

import (
	"strings"

	"github.com/ellavondegurechaff/levibot/levibot/game"
)

type Tier int

const (
	Common Tier = iota + 1
	Uncommon
	Rare
	Epic
	Legendary
)

// Tiers lists every tier from the most to the least valuable. Tables are
// walked in this order so cumulative picks match the historic behaviour.
var Tiers = []Tier{Legendary, Epic, Rare, Uncommon, Common}

func (t Tier) String() string {
	switch t {
	case Common:
		return "common"
	case Uncommon:
		return "uncommon"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	}
	return "unknown"
}

func (t Tier) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func (t Tier) Valid() bool {
	return t >= Common && t <= Legendary
}

func Parse(s string) (Tier, bool) {
	for _, t := range Tiers {
		if strings.EqualFold(s, t.String()) {
			return t, true
		}
	}
	return 0, false
}

func Emoji(t Tier) string {
	switch t {
	case Legendary:
		return "🌟"
	case Epic:
		return "💫"
	case Rare:
		return "✨"
	case Uncommon:
		return "⚡"
	case Common:
		return "🔹"
	}
	return "🎴"
}

// Reward is the coin payout for catching a card of the given tier.
func Reward(t Tier) int64 {
	switch t {
	case Legendary:
		return 1000
	case Epic:
		return 500
	case Rare:
		return 200
	case Uncommon:
		return 100
	case Common:
		return 50
	}
	return 0
}

// StatRange bounds the base stats a freshly seeded card of the tier may carry.
func StatRange(t Tier) (min, max int) {
	switch t {
	case Legendary:
		return 70, 100
	case Epic:
		return 60, 90
	case Rare:
		return 50, 80
	case Uncommon:
		return 40, 70
	default:
		return 30, 60
	}
}

// Table maps tiers to their probability. Weights need not sum to 1; Pick
// normalises against the total.
type Table map[Tier]float64

var (
	SpawnTable = Table{Legendary: 0.01, Epic: 0.04, Rare: 0.10, Uncommon: 0.25, Common: 0.60}
	DailyTable = Table{Legendary: 0.01, Epic: 0.04, Rare: 0.10, Uncommon: 0.25, Common: 0.60}
)

func (tb Table) total() float64 {
	var sum float64
	for _, t := range Tiers {
		sum += tb[t]
	}
	return sum
}

// Pick performs a cumulative weighted selection over the table.
func Pick(rng game.Rand, tb Table) Tier {
	total := tb.total()
	if total <= 0 {
		return Common
	}

	roll := rng.Float64() * total
	var cumulative float64
	for _, t := range Tiers {
		cumulative += tb[t]
		if roll < cumulative {
			return t
		}
	}
	return Common
}
