package cardleveling

type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	if config == nil {
		config = NewDefaultConfig()
	}
	return &Calculator{config: config}
}

func (c *Calculator) CalculateExpRequirement(level int) int {
	if level < 1 {
		level = 1
	}
	return level * c.config.ExpPerLevel
}

// Apply adds exp and levels up as long as the threshold is met, carrying the
// remainder into the next level.
func (c *Calculator) Apply(p CardProgress, gained int) LevelingResult {
	level := max(p.Level, 1)
	exp := max(p.Exp, 0) + max(gained, 0)

	for exp >= c.CalculateExpRequirement(level) {
		if c.config.MaxLevel > 0 && level >= c.config.MaxLevel {
			break
		}
		exp -= c.CalculateExpRequirement(level)
		level++
	}

	return LevelingResult{
		UserCardID:    p.UserCardID,
		PreviousLevel: max(p.Level, 1),
		NewLevel:      level,
		CurrentExp:    exp,
		RequiredExp:   c.CalculateExpRequirement(level),
		ExpGained:     gained,
	}
}
