package game

import (
	"github.com/pkg/errors"
)

// OutcomeKind classifies the result of one tick
type OutcomeKind uint8

const (
	Continued OutcomeKind = iota
	AteFood
	SelfCollision
	WallCollision
	BoardFull
)

func (k OutcomeKind) String() string {
	switch k {
	case Continued:
		return "continued"
	case AteFood:
		return "ate_food"
	case SelfCollision:
		return "self_collision"
	case WallCollision:
		return "wall_collision"
	case BoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the game
func (k OutcomeKind) Terminal() bool {
	return k == SelfCollision || k == WallCollision || k == BoardFull
}

// Outcome is the result of Step
type Outcome struct {
	Kind  OutcomeKind
	Score int
	Head  Coord
	Food  *Food // consumed item for AteFood and BoardFull
}

// Step advances the world by one tick
// Order: heading update, wall check, self check, move, food
// Collisions halt before any mutation of the body
func Step(w *World, requested Direction) Outcome {
	w.Snake.SetHeading(requested)

	next, err := w.Snake.Next(w.Grid, w.Rules.Policy)
	if err != nil {
		return Outcome{Kind: WallCollision, Score: w.Score, Head: w.Snake.Head()}
	}

	if w.Snake.Contains(next) {
		return Outcome{Kind: SelfCollision, Score: w.Score, Head: next}
	}

	head, _, _, err := w.Snake.Advance(w.Grid, w.Rules.Policy)
	if err != nil {
		// Next already validated the move
		return Outcome{Kind: WallCollision, Score: w.Score, Head: w.Snake.Head()}
	}
	w.Ticks++

	i := w.foodIndex(head)
	if i < 0 {
		return Outcome{Kind: Continued, Score: w.Score, Head: head}
	}

	eaten := w.removeFood(i)
	w.Snake.Grow(w.Rules.GrowthPerFood)
	w.Score += w.Rules.ScorePerFood
	w.Eaten++

	if err := w.spawnFood(); err != nil {
		if errors.Is(err, ErrNoSpaceLeft) {
			return Outcome{Kind: BoardFull, Score: w.Score, Head: head, Food: &eaten}
		}
	}
	return Outcome{Kind: AteFood, Score: w.Score, Head: head, Food: &eaten}
}
