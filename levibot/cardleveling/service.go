package cardleveling

type Service struct {
	config     *Config
	calculator *Calculator
}

func NewService(config *Config) *Service {
	if config == nil {
		config = NewDefaultConfig()
	}
	return &Service{
		config:     config,
		calculator: NewCalculator(config),
	}
}

func (s *Service) Calculator() *Calculator {
	return s.calculator
}

// AwardBattle grants the win or loss award to every card of a deck.
func (s *Service) AwardBattle(cards []CardProgress, won bool) []LevelingResult {
	gain := s.config.LossExp
	if won {
		gain = s.config.WinExp
	}

	results := make([]LevelingResult, 0, len(cards))
	for _, c := range cards {
		results = append(results, s.calculator.Apply(c, gain))
	}
	return results
}

func (s *Service) WinExp() int {
	return s.config.WinExp
}

func (s *Service) LossExp() int {
	return s.config.LossExp
}
