package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyUser is a document of the original "users" collection. Fields that
// were added on the fly by commands are optional.
type LegacyUser struct {
	ID                  primitive.ObjectID `bson:"_id"`
	UserID              string             `bson:"userId"`
	Name                string             `bson:"name"`
	Coins               float64            `bson:"coins"`
	CommandsUsed        float64            `bson:"commandsUsed"`
	FavoriteCommand     string             `bson:"favoriteCommand"`
	LastSeen            time.Time          `bson:"lastSeen"`
	IsBlocked           bool               `bson:"isBlocked"`
	CleaningSkill       float64            `bson:"cleaningSkill"`
	DailyStreak         float64            `bson:"dailyStreak"`
	LastDailyClaim      time.Time          `bson:"lastDailyClaim"`
	TrainingCount       float64            `bson:"trainingCount"`
	SuccessfulTrainings float64            `bson:"successfulTrainings"`
	LastTraining        time.Time          `bson:"lastTraining"`
	CreatedAt           time.Time          `bson:"createdAt"`
}

type LegacyStats struct {
	Attack  float64 `bson:"attack"`
	Defense float64 `bson:"defense"`
	Speed   float64 `bson:"speed"`
}

type LegacyAbility struct {
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Effect      string `bson:"effect"`
}

// LegacyCard is a document of the original "cards" collection.
type LegacyCard struct {
	CardID    string         `bson:"cardId"`
	Name      string         `bson:"name"`
	Anime     string         `bson:"anime"`
	ImageURL  string         `bson:"imageUrl"`
	Rarity    string         `bson:"rarity"`
	Type      string         `bson:"type"`
	Stats     *LegacyStats   `bson:"stats"`
	Ability   *LegacyAbility `bson:"ability"`
	SpawnRate *float64       `bson:"spawnRate"`
}

// LegacyUserCard is a document of the original "usercards" collection.
type LegacyUserCard struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       string             `bson:"userId"`
	CardID       string             `bson:"cardId"`
	Level        float64            `bson:"level"`
	Exp          float64            `bson:"exp"`
	Nickname     string             `bson:"nickname"`
	InDeck       bool               `bson:"inDeck"`
	DeckPosition *float64           `bson:"deckPosition"`
	Favorite     bool               `bson:"favorite"`
	ObtainedAt   time.Time          `bson:"obtainedAt"`
}

// Stats counts what one run read and wrote per table.
type Stats struct {
	Tables map[string]*TableStats
}

type TableStats struct {
	Read     int
	Written  int
	Skipped  int
	Duration time.Duration
}

func (s *Stats) table(name string) *TableStats {
	if s.Tables == nil {
		s.Tables = make(map[string]*TableStats)
	}
	t, ok := s.Tables[name]
	if !ok {
		t = &TableStats{}
		s.Tables[name] = t
	}
	return t
}
