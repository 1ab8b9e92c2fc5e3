package cardleveling

type LevelingResult struct {
	UserCardID    string
	PreviousLevel int
	NewLevel      int
	CurrentExp    int
	RequiredExp   int
	ExpGained     int
}

func (r LevelingResult) LeveledUp() bool {
	return r.NewLevel > r.PreviousLevel
}

// CardProgress is the level state of one owned card.
type CardProgress struct {
	UserCardID string
	Level      int
	Exp        int
}
