package battle

import (
	"time"

	"github.com/ellavondegurechaff/levibot/levibot/game"
)

type Engine struct {
	rng       game.Rand
	now       func() time.Time
	maxRounds int
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithMaxRounds(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxRounds = n
		}
	}
}

func NewEngine(rng game.Rand, opts ...Option) *Engine {
	e := &Engine{
		rng:       rng,
		now:       time.Now,
		maxRounds: MaxRounds,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type arena struct {
	cards map[Side][]Fighter
	hp    map[Side]int
	turns []Turn
}

// Simulate runs a full battle. The decks are copied; buffs and debuffs only
// live for the duration of the simulation.
//
// Each action draws, in order: the acting card (Intn), the target (Intn) and,
// for balance and support cards, the move roll (Float64).
func (e *Engine) Simulate(challenger, opponent []Fighter) (*Result, error) {
	if len(challenger) == 0 || len(opponent) == 0 {
		return nil, ErrEmptyDeck
	}

	a := &arena{
		cards: map[Side][]Fighter{
			Challenger: append([]Fighter(nil), challenger...),
			Opponent:   append([]Fighter(nil), opponent...),
		},
		hp: map[Side]int{Challenger: MaxHP, Opponent: MaxHP},
	}

	round := 0
	for a.hp[Challenger] > 0 && a.hp[Opponent] > 0 && round < e.maxRounds {
		round++

		first := Opponent
		if averageSpeed(a.cards[Challenger]) >= averageSpeed(a.cards[Opponent]) || round%2 == 0 {
			first = Challenger
		}

		e.act(a, round, first)
		if a.hp[first.Other()] <= 0 {
			break
		}
		e.act(a, round, first.Other())
	}

	res := &Result{
		Turns:        a.turns,
		ChallengerHP: a.hp[Challenger],
		OpponentHP:   a.hp[Opponent],
		Rounds:       round,
	}

	switch {
	case a.hp[Opponent] <= 0:
		res.Winner = Challenger
	case a.hp[Challenger] <= 0:
		res.Winner = Opponent
	default:
		res.TimedOut = true
		// exact HP tie goes to the challenger
		if a.hp[Challenger] >= a.hp[Opponent] {
			res.Winner = Challenger
		} else {
			res.Winner = Opponent
		}
	}

	return res, nil
}

func (e *Engine) act(a *arena, round int, side Side) {
	own := a.cards[side]
	enemy := a.cards[side.Other()]

	ci := e.rng.Intn(len(own))
	ti := e.rng.Intn(len(enemy))
	card := &own[ci]
	target := &enemy[ti]

	turn := Turn{
		Round:    round,
		Side:     side,
		CardName: card.Name,
		Target:   target.Name,
	}

	switch card.Archetype {
	case ArchetypeDefense:
		turn.Move = MoveDefend
		card.Defense += card.Defense / 10
	case ArchetypeBalance:
		if e.rng.Float64() < 0.7 {
			turn.Move = MoveAttack
			turn.Damage = atLeastOne((10*card.Attack - 3*target.Defense) / 10)
		} else {
			turn.Move = MoveDefend
			card.Defense += card.Defense / 20
		}
	case ArchetypeSupport:
		if e.rng.Float64() < 0.3 {
			turn.Move = MoveHeal
			before := a.hp[side]
			a.hp[side] = min(MaxHP, a.hp[side]+card.Defense/5)
			turn.Healed = a.hp[side] - before
		} else {
			turn.Move = MoveWeaken
			turn.Damage = card.Attack * 3 / 10
			target.Defense = max(1, target.Defense-target.Defense/10)
		}
	default:
		turn.Move = MoveAttack
		turn.Damage = atLeastOne((2*card.Attack - target.Defense) / 2)
	}

	a.hp[side.Other()] -= turn.Damage
	turn.At = e.now()
	a.turns = append(a.turns, turn)
}

func averageSpeed(cards []Fighter) float64 {
	var sum int
	for _, c := range cards {
		sum += c.Speed
	}
	return float64(sum) / float64(len(cards))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
