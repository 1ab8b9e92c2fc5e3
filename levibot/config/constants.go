package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Pagination
	CardsPerPage       = 10
	LeaderboardSize    = 10
	DefaultPrefix      = "!"
	LeviFlavorChance   = 0.3
	MaxCommandArgument = 64

	// Colors
	ErrorColor = 0xFF0000
	InfoColor  = 0x0099FF

	// Rarity Colors
	RarityCommonColor    = 0x808080
	RarityUncommonColor  = 0x00FF00
	RarityRareColor      = 0x0000FF
	RarityEpicColor      = 0x800080
	RarityLegendaryColor = 0xFFD700
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout     = 30 * time.Second
	BatchQueryTimeout       = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	ArtworkFetchTimeout     = 10 * time.Second
	RenderTimeout           = 15 * time.Second

	// Cache settings
	CacheExpiration = 5 * time.Minute
	CacheSize       = 10000
)

// Game Mechanics Constants
const (
	// Spawn system
	SpawnChance        = 0.05
	SpawnCooldown      = 30 * time.Minute
	SpawnCatchWindow   = 5 * time.Minute
	SpawnSweepInterval = 30 * time.Second
	ForceSpawnLimit    = 5
	ForceSpawnPeriod   = 2 * time.Minute
	SpawnStoreDatabase = "database"
	SpawnStoreMemory   = "memory"

	// Battle system
	BattleWindow  = 24 * time.Hour
	BattleWinExp  = 25
	BattleLossExp = 10
	ExpPerLevel   = 100
	// An active battle untouched this long lost its settlement and is
	// released by the sweeper.
	StaleBattleAfter     = 10 * time.Minute
	BattleReleaseTimeout = 5 * time.Second

	// Trade system
	TradeWindow      = 1 * time.Hour
	NegotiationSweep = 1 * time.Minute

	// Daily system
	DailyReward           = 100
	DailyPeriod           = 24 * time.Hour
	DailyStreakGrace      = 48 * time.Hour
	DailyStreakTier1      = 3
	DailyStreakTier1Bonus = 50
	DailyStreakTier2      = 7
	DailyStreakTier2Bonus = 100
	DailyCardChance       = 0.10
	DailyCardChanceTier1  = 0.25
	DailyCardChanceTier2  = 0.50

	// Training system
	TrainingCooldown    = 1 * time.Hour
	TrainingSuccessRate = 0.7
)
