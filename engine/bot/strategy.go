// Package bot provides heuristic decision engines for the non-human
// seats. Two skill tiers implement one Strategy surface; both draw only
// from the engine's legal-move oracle, so a returned card is always
// playable.
package bot

import (
	"github.com/mvrdoljak/belot/engine"
)

// Strategy is the capability surface a seat controller implements. Every
// decision carries a short natural-language explanation of the tactic.
type Strategy interface {
	Name() string

	// ChooseBid returns the suit to call, or ok=false to pass.
	ChooseBid(g *engine.GameState, seat engine.Seat) (suit engine.Suit, ok bool, explanation string)

	// ChooseTrump picks a suit for the forced dealer choice.
	ChooseTrump(g *engine.GameState, seat engine.Seat) (engine.Suit, string)

	// ChooseDiscard picks the two cards the declarer returns to the table
	// after taking the talon.
	ChooseDiscard(g *engine.GameState, seat engine.Seat) ([2]engine.Card, string)

	// ChooseMove picks a card from the current legal-move set.
	ChooseMove(g *engine.GameState, seat engine.Seat) (engine.Card, string, error)
}

// rankStrength is a 1..8 ladder over the comparison order, used by the
// bidding heuristics.
func rankStrength(r engine.Rank) int { return int(r) + 1 }

// suitCards groups a hand's cards of one suit.
func suitCards(hand []engine.Card, s engine.Suit) []engine.Card {
	var out []engine.Card
	for _, c := range hand {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

// longestSuit returns the suit the hand holds the most cards of.
func longestSuit(hand []engine.Card) engine.Suit {
	best := engine.Hearts
	bestLen := -1
	for _, s := range engine.Suits {
		if n := len(suitCards(hand, s)); n > bestLen {
			best, bestLen = s, n
		}
	}
	return best
}

// lowestByRank returns the lowest-ranked card of a non-empty set.
func lowestByRank(cards []engine.Card) engine.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < low.Rank {
			low = c
		}
	}
	return low
}

// lowestByPoints orders by (point value, rank) and returns the cheapest
// card of a non-empty set.
func lowestByPoints(cards []engine.Card) engine.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Points() < low.Points() || (c.Points() == low.Points() && c.Rank < low.Rank) {
			low = c
		}
	}
	return low
}

// WinsTrick reports whether playing card now would leave seat winning the
// current trick. Speculative and side-effect free.
func WinsTrick(g *engine.GameState, seat engine.Seat, card engine.Card) bool {
	if g.Trump == nil {
		return false
	}
	trial := engine.Trick{
		Cards: append(
			append([]engine.PlayedCard(nil), g.CurrentTrick.Cards...),
			engine.PlayedCard{Seat: seat, Card: card},
		),
	}
	winner, err := engine.EvaluateTrick(&trial, *g.Trump)
	return err == nil && winner == seat
}
