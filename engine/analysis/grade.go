package analysis

import (
	"fmt"

	"github.com/mvrdoljak/belot/engine"
)

// Grade classifies one decision relative to a reference move.
type Grade int

const (
	GradeBest Grade = iota
	GradeOK
	GradeMistake
	GradeBlunder
)

func (g Grade) String() string {
	switch g {
	case GradeBest:
		return "best"
	case GradeOK:
		return "ok"
	case GradeMistake:
		return "mistake"
	case GradeBlunder:
		return "blunder"
	default:
		return "unknown"
	}
}

// Decision is one recorded choice point: what was legal, what was played
// (nil when the seat failed to act) and optionally the reference move the
// hint engine recommended at the time.
type Decision struct {
	Seat    engine.Seat
	Played  *engine.Card
	Legal   []engine.Card
	Optimal *engine.Card
}

// RecordDecision captures a choice point from a live state before the
// play is committed. Cheap because states are never mutated in place.
func RecordDecision(g *engine.GameState, seat engine.Seat, played engine.Card) Decision {
	d := Decision{
		Seat:   seat,
		Played: &played,
		Legal:  g.LegalMoves(seat),
	}
	if ref, _, err := Hint(g, seat); err == nil {
		d.Optimal = &ref
	}
	return d
}

// GradeDecision grades a decision against its reference move. When the
// decision carries no reference, one is derived heuristically from the
// legal-move set; that derivation is an approximation, not a game-tree
// search. An exact match grades best; a same-suit card within one rank
// grades ok; a same-suit card further off grades mistake; anything else
// grades blunder. Failing to play at all when options existed is a
// mistake.
func GradeDecision(d Decision) (Grade, string) {
	if d.Played == nil {
		if len(d.Legal) > 0 {
			return GradeMistake, "no move was made although options existed"
		}
		return GradeOK, "no options were available"
	}

	optimal := d.Optimal
	if optimal == nil {
		if len(d.Legal) == 0 {
			return GradeBlunder, "a move was made with no legal options recorded"
		}
		ref := deriveOptimal(d.Legal)
		optimal = &ref
	}

	played := *d.Played
	switch {
	case played == *optimal:
		return GradeBest, fmt.Sprintf("%s was the recommended move", played)
	case played.Suit == optimal.Suit && rankDistance(played.Rank, optimal.Rank) <= 1:
		return GradeOK, fmt.Sprintf("%s is close to the recommended %s", played, *optimal)
	case played.Suit == optimal.Suit:
		return GradeMistake, fmt.Sprintf("%s gives away more than the recommended %s", played, *optimal)
	default:
		return GradeBlunder, fmt.Sprintf("%s abandons the recommended suit entirely (%s was best)", played, *optimal)
	}
}

// deriveOptimal approximates a reference move from the legal set alone:
// the lowest card, conserving high cards.
func deriveOptimal(legal []engine.Card) engine.Card {
	return lowest(legal)
}

func rankDistance(a, b engine.Rank) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
