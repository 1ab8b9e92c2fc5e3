package rarity

import "strings"

type Pack struct {
	Key         string
	Name        string
	Description string
	Price       int64
	Cards       int
	Table       Table
	// GuaranteedLegendary replaces the first draw with a legendary pick.
	GuaranteedLegendary bool
	// Featured packs draw from one series when the caller names it.
	Featured bool
}

var Packs = []Pack{
	{
		Key:         "basic",
		Name:        "Basic Pack",
		Description: "5 random cards with standard rates",
		Price:       500,
		Cards:       5,
		Table:       Table{Legendary: 0.01, Epic: 0.05, Rare: 0.14, Uncommon: 0.30, Common: 0.50},
	},
	{
		Key:         "premium",
		Name:        "Premium Pack",
		Description: "5 cards with better rarity chances",
		Price:       1500,
		Cards:       5,
		Table:       Table{Legendary: 0.05, Epic: 0.15, Rare: 0.30, Uncommon: 0.30, Common: 0.20},
	},
	{
		Key:                 "legendary",
		Name:                "Legendary Pack",
		Description:         "5 cards including one guaranteed legendary",
		Price:               5000,
		Cards:               5,
		Table:               Table{Legendary: 0.20, Epic: 0.30, Rare: 0.30, Uncommon: 0.15, Common: 0.05},
		GuaranteedLegendary: true,
	},
	{
		Key:         "special",
		Name:        "Special Anime Pack",
		Description: "3 cards from a featured anime",
		Price:       3000,
		Cards:       3,
		Table:       Table{Legendary: 0.10, Epic: 0.20, Rare: 0.30, Uncommon: 0.20, Common: 0.20},
		Featured:    true,
	},
}

func PackByKey(key string) (Pack, bool) {
	for _, p := range Packs {
		if strings.EqualFold(p.Key, key) {
			return p, true
		}
	}
	return Pack{}, false
}
