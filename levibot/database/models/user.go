package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID              string `bun:"id,pk,type:text"`
	Name            string `bun:"name,notnull,default:''"`
	Balance         int64  `bun:"balance,notnull,default:0"`
	CommandsUsed    int64  `bun:"commands_used,notnull,default:0"`
	FavoriteCommand string `bun:"favorite_command,notnull,default:''"`
	CardsCaught     int64  `bun:"cards_caught,notnull,default:0"`
	BattlesWon      int64  `bun:"battles_won,notnull,default:0"`
	BattlesLost     int64  `bun:"battles_lost,notnull,default:0"`

	DailyStreak int       `bun:"daily_streak,notnull,default:0"`
	LastDaily   time.Time `bun:"last_daily,nullzero"`

	TrainingCount       int64     `bun:"training_count,notnull,default:0"`
	SuccessfulTrainings int64     `bun:"successful_trainings,notnull,default:0"`
	CleaningSkill       int64     `bun:"cleaning_skill,notnull,default:0"`
	LastTraining        time.Time `bun:"last_training,nullzero"`

	// CommandCounts feeds FavoriteCommand
	CommandCounts map[string]int64 `bun:"command_counts,type:jsonb"`

	IsBlocked bool      `bun:"is_blocked,notnull,default:false"`
	LastSeen  time.Time `bun:"last_seen,nullzero"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
