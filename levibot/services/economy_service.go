package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/ellavondegurechaff/levibot/levibot/config"
	"github.com/ellavondegurechaff/levibot/levibot/database/models"
	"github.com/ellavondegurechaff/levibot/levibot/database/repositories"
	"github.com/ellavondegurechaff/levibot/levibot/economy/utils"
	"github.com/ellavondegurechaff/levibot/levibot/game"
	"github.com/ellavondegurechaff/levibot/levibot/game/rarity"
	"github.com/ellavondegurechaff/levibot/levibot/spawn"
)

var (
	ErrUnknownPack      = errors.New("that pack doesn't exist")
	ErrDailyClaimed     = errors.New("daily reward already claimed")
	ErrTrainingCooldown = errors.New("still resting from the last training")
)

// CooldownError reports how long until an action is allowed again.
type CooldownError struct {
	Err       error
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%v (%s left)", e.Err, e.Remaining.Round(time.Second))
}

func (e *CooldownError) Unwrap() error {
	return e.Err
}

// CardPicker is the part of the catalog random draws need.
type CardPicker interface {
	ByTier(ctx context.Context, tier rarity.Tier) ([]*models.Card, error)
	ByAnimeTier(ctx context.Context, anime string, tier rarity.Tier) ([]*models.Card, error)
	Animes(ctx context.Context) ([]string, error)
}

// EconomyService owns every coin and card grant that is not a battle or a
// trade.
type EconomyService struct {
	etm    *utils.EconomicTransactionManager
	picker CardPicker
	rng    game.Rand
	now    func() time.Time
}

var _ spawn.Collector = (*EconomyService)(nil)

func NewEconomyService(etm *utils.EconomicTransactionManager, picker CardPicker, rng game.Rand) *EconomyService {
	return &EconomyService{etm: etm, picker: picker, rng: rng, now: time.Now}
}

func lockUser(ctx context.Context, tx bun.Tx, id string) (*models.User, error) {
	u := new(models.User)
	if err := tx.NewSelect().Model(u).Where("id = ?", id).For("UPDATE").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to lock user: %w", err)
	}
	return u, nil
}

// GrantCatch gives the catcher a fresh level 1 copy and the rarity reward.
func (s *EconomyService) GrantCatch(ctx context.Context, userID, userName string, card *models.Card, reward int64) (*models.UserCard, error) {
	var uc *models.UserCard
	err := s.etm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := repositories.EnsureUser(ctx, tx, userID, userName); err != nil {
			return err
		}

		var err error
		if uc, err = s.etm.GrantCard(ctx, tx, userID, card.ID); err != nil {
			return err
		}
		uc.Card = card

		_, err = tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("balance = balance + ?", reward).
			Set("cards_caught = cards_caught + 1").
			Set("updated_at = ?", s.now()).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to credit catch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc, nil
}

type PackResult struct {
	Pack  rarity.Pack
	Anime string
	Cards []*models.UserCard
	// Refund covers draws whose tier had no cards.
	Refund  int64
	Balance int64
}

// BuyPack debits the pack price under a row lock and then opens it.
func (s *EconomyService) BuyPack(ctx context.Context, userID, userName, packKey, anime string) (*PackResult, error) {
	pack, ok := rarity.PackByKey(packKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPack, packKey)
	}
	if pack.Featured && anime == "" {
		anime = s.featuredAnime(ctx)
	}

	res := &PackResult{Pack: pack, Anime: anime}
	err := s.etm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res.Cards, res.Refund = nil, 0

		if err := repositories.EnsureUser(ctx, tx, userID, userName); err != nil {
			return err
		}
		if err := s.etm.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
			UserID: userID,
			Amount: -pack.Price,
		}); err != nil {
			return err
		}

		draws, refund, err := DrawPack(ctx, s.picker, s.rng, pack, anime)
		if err != nil {
			return err
		}
		for _, card := range draws {
			uc, err := s.etm.GrantCard(ctx, tx, userID, card.ID)
			if err != nil {
				return err
			}
			uc.Card = card
			res.Cards = append(res.Cards, uc)
		}

		if refund > 0 {
			res.Refund = refund
			if err := s.etm.ValidateAndUpdateBalance(ctx, tx, utils.BalanceOperationOptions{
				UserID: userID,
				Amount: refund,
			}); err != nil {
				return err
			}
		}

		res.Balance, err = s.etm.LockBalance(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Pack opened",
		slog.String("type", "sys"),
		slog.String("user_id", userID),
		slog.String("pack", pack.Key),
		slog.Int("cards", len(res.Cards)),
		slog.Int64("refund", res.Refund))
	return res, nil
}

func (s *EconomyService) featuredAnime(ctx context.Context) string {
	animes, err := s.picker.Animes(ctx)
	if err != nil || len(animes) == 0 {
		return ""
	}
	return animes[s.rng.Intn(len(animes))]
}

// DrawPack rolls every slot of a pack. Featured packs fall back to the whole
// catalog when the series has nothing of the rolled tier; a tier with no
// cards at all is refunded at its reward value.
func DrawPack(ctx context.Context, picker CardPicker, rng game.Rand, pack rarity.Pack, anime string) ([]*models.Card, int64, error) {
	var (
		cards  []*models.Card
		refund int64
	)
	for i := 0; i < pack.Cards; i++ {
		tier := rarity.Legendary
		if !pack.GuaranteedLegendary || i > 0 {
			tier = rarity.Pick(rng, pack.Table)
		}

		var pool []*models.Card
		if pack.Featured && anime != "" {
			var err error
			if pool, err = picker.ByAnimeTier(ctx, anime, tier); err != nil {
				return nil, 0, fmt.Errorf("failed to load %s %s cards: %w", anime, tier, err)
			}
		}
		if len(pool) == 0 {
			var err error
			if pool, err = picker.ByTier(ctx, tier); err != nil {
				return nil, 0, fmt.Errorf("failed to load %s cards: %w", tier, err)
			}
		}

		if len(pool) == 0 {
			refund += rarity.Reward(tier)
			continue
		}
		cards = append(cards, pool[rng.Intn(len(pool))])
	}
	return cards, refund, nil
}

type DailyPlan struct {
	Streak     int
	Coins      int64
	CardChance float64
}

// PlanDaily decides the reward for a claim at now. The streak survives when
// the previous claim is less than DailyStreakGrace old.
func PlanDaily(lastDaily time.Time, streak int, now time.Time) (DailyPlan, error) {
	if !lastDaily.IsZero() {
		since := now.Sub(lastDaily)
		if since < config.DailyPeriod {
			return DailyPlan{}, &CooldownError{Err: ErrDailyClaimed, Remaining: config.DailyPeriod - since}
		}
		if since < config.DailyStreakGrace {
			streak++
		} else {
			streak = 1
		}
	} else {
		streak = 1
	}

	plan := DailyPlan{Streak: streak, Coins: config.DailyReward, CardChance: config.DailyCardChance}
	switch {
	case streak >= config.DailyStreakTier2:
		plan.Coins += config.DailyStreakTier2Bonus
		plan.CardChance = config.DailyCardChanceTier2
	case streak >= config.DailyStreakTier1:
		plan.Coins += config.DailyStreakTier1Bonus
		plan.CardChance = config.DailyCardChanceTier1
	}
	return plan, nil
}

type DailyResult struct {
	DailyPlan
	Bonus *models.UserCard
	// BonusSkipped is set when the bonus roll hit a tier with no cards.
	BonusSkipped bool
	Balance      int64
}

func (s *EconomyService) ClaimDaily(ctx context.Context, userID, userName string) (*DailyResult, error) {
	res := new(DailyResult)
	err := s.etm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		*res = DailyResult{}
		if err := repositories.EnsureUser(ctx, tx, userID, userName); err != nil {
			return err
		}
		u, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := s.now()
		plan, err := PlanDaily(u.LastDaily, u.DailyStreak, now)
		if err != nil {
			return err
		}
		res.DailyPlan = plan

		_, err = tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("balance = balance + ?", plan.Coins).
			Set("daily_streak = ?", plan.Streak).
			Set("last_daily = ?", now).
			Set("updated_at = ?", now).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to credit daily reward: %w", err)
		}
		res.Balance = u.Balance + plan.Coins

		if s.rng.Float64() >= plan.CardChance {
			return nil
		}
		tier := rarity.Pick(s.rng, rarity.DailyTable)
		pool, err := s.picker.ByTier(ctx, tier)
		if err != nil {
			return fmt.Errorf("failed to load %s cards: %w", tier, err)
		}
		if len(pool) == 0 {
			res.BonusSkipped = true
			return nil
		}
		card := pool[s.rng.Intn(len(pool))]
		if res.Bonus, err = s.etm.GrantCard(ctx, tx, userID, card.ID); err != nil {
			return err
		}
		res.Bonus.Card = card
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type TrainingScenario struct {
	Name        string
	Description string
	Success     string
	Failure     string
	SkillGain   int64
}

var TrainingScenarios = []TrainingScenario{
	{
		Name:        "ODM Gear Practice",
		Description: "Training with Omni-Directional Mobility Gear in the forest",
		Success:     "Your movements are becoming more efficient. You wasted less gas than last time.",
		Failure:     "You nearly crashed into a tree. Your reflexes need work.",
		SkillGain:   2,
	},
	{
		Name:        "Titan Dummy Training",
		Description: "Practicing nape cutting techniques on wooden titan dummies",
		Success:     "Your cuts are becoming deeper and more precise. Keep it up.",
		Failure:     "Your cuts are too shallow. A real titan would have regenerated.",
		SkillGain:   3,
	},
	{
		Name:        "Formation Riding",
		Description: "Practicing long-distance scouting formation on horseback",
		Success:     "You maintained your position well. Your signals were clear.",
		Failure:     "You broke formation twice. In a real mission, that would endanger your comrades.",
		SkillGain:   1,
	},
	{
		Name:        "Endurance Training",
		Description: "Running laps around the headquarters with full gear",
		Success:     "Your stamina is improving. You completed all laps at a consistent pace.",
		Failure:     "You're out of breath too quickly. How do you expect to fight titans like this?",
		SkillGain:   2,
	},
	{
		Name:        "Cleaning Drill",
		Description: "Speed-cleaning the mess hall under Captain Levi's supervision",
		Success:     "Acceptable. You missed fewer spots than last time.",
		Failure:     "Pathetic. I could still write my name in the dust.",
		SkillGain:   3,
	},
}

type TrainingPlan struct {
	Scenario TrainingScenario
	Success  bool
	Gain     int64
}

// PlanTraining rolls a session. Failures still earn half the gain, rounded
// up.
func PlanTraining(lastTraining, now time.Time, rng game.Rand) (TrainingPlan, error) {
	if !lastTraining.IsZero() {
		if since := now.Sub(lastTraining); since < config.TrainingCooldown {
			return TrainingPlan{}, &CooldownError{Err: ErrTrainingCooldown, Remaining: config.TrainingCooldown - since}
		}
	}

	plan := TrainingPlan{Scenario: TrainingScenarios[rng.Intn(len(TrainingScenarios))]}
	plan.Success = rng.Float64() < config.TrainingSuccessRate
	plan.Gain = plan.Scenario.SkillGain
	if !plan.Success {
		plan.Gain = (plan.Gain + 1) / 2
	}
	return plan, nil
}

type TrainingResult struct {
	TrainingPlan
	Count      int64
	Successful int64
	Skill      int64
}

func (s *EconomyService) Train(ctx context.Context, userID, userName string) (*TrainingResult, error) {
	res := new(TrainingResult)
	err := s.etm.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := repositories.EnsureUser(ctx, tx, userID, userName); err != nil {
			return err
		}
		u, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := s.now()
		plan, err := PlanTraining(u.LastTraining, now, s.rng)
		if err != nil {
			return err
		}

		res.TrainingPlan = plan
		res.Count = u.TrainingCount + 1
		res.Successful = u.SuccessfulTrainings
		if plan.Success {
			res.Successful++
		}
		res.Skill = u.CleaningSkill + plan.Gain

		_, err = tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("training_count = ?", res.Count).
			Set("successful_trainings = ?", res.Successful).
			Set("cleaning_skill = ?", res.Skill).
			Set("last_training = ?", now).
			Set("updated_at = ?", now).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to save training: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
