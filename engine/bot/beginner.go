package bot

import (
	"fmt"

	"github.com/mvrdoljak/belot/engine"
)

// Beginner is the tier-1 strategy: simple fixed heuristics with no card
// counting. It bids on raw suit length and rank strength, leads low and
// only spends high cards when they win the trick outright.
type Beginner struct{}

var _ Strategy = Beginner{}

func (Beginner) Name() string { return "beginner" }

// bid thresholds: the strongest suit must be at least this long and this
// strong on the 1..8 rank ladder.
const (
	beginnerBidMinLen      = 3
	beginnerBidMinStrength = 10
)

func (Beginner) ChooseBid(g *engine.GameState, seat engine.Seat) (engine.Suit, bool, string) {
	suit, length, strength := strongestSuit(g.Hand(seat))
	if length >= beginnerBidMinLen && strength >= beginnerBidMinStrength {
		return suit, true, fmt.Sprintf("bidding %s: %d cards with strength %d", suit.Name(), length, strength)
	}
	return 0, false, "passing: no suit strong enough to call"
}

func (Beginner) ChooseTrump(g *engine.GameState, seat engine.Seat) (engine.Suit, string) {
	suit, length, _ := strongestSuit(g.Hand(seat))
	return suit, fmt.Sprintf("forced choice: %s is the longest suit held (%d cards)", suit.Name(), length)
}

func (Beginner) ChooseDiscard(g *engine.GameState, seat engine.Seat) ([2]engine.Card, string) {
	return discardCheapest(g.Hand(seat), g.Trump), "returning the two cheapest off-trump cards"
}

func (b Beginner) ChooseMove(g *engine.GameState, seat engine.Seat) (engine.Card, string, error) {
	if g.Trump == nil {
		return engine.Card{}, "", &engine.WrongPhaseError{Action: "choose move", Phase: g.Phase}
	}
	legal := g.LegalMoves(seat)
	if len(legal) == 0 {
		return engine.Card{}, "", &engine.IllegalMoveError{Seat: seat}
	}
	trump := *g.Trump

	if len(g.CurrentTrick.Cards) == 0 {
		if trumps := suitCards(legal, trump); len(trumps) > 0 {
			return lowestByRank(trumps), "leading with lowest trump", nil
		}
		long := suitCards(legal, longestSuit(legal))
		return lowestByRank(long), "leading low from the longest suit", nil
	}

	var winners []engine.Card
	for _, c := range legal {
		if WinsTrick(g, seat, c) {
			winners = append(winners, c)
		}
	}
	if len(winners) > 0 {
		return lowestByRank(winners), "taking the trick with the lowest winning card", nil
	}

	if offTrump := nonTrump(legal, trump); len(offTrump) > 0 {
		return lowestByRank(offTrump), "cannot win, discarding lowest card", nil
	}
	return lowestByRank(legal), "cannot win, forced to spend lowest trump", nil
}

// strongestSuit scores each suit by length then rank strength.
func strongestSuit(hand []engine.Card) (engine.Suit, int, int) {
	best := engine.Hearts
	bestLen, bestStrength := -1, -1
	for _, s := range engine.Suits {
		cards := suitCards(hand, s)
		strength := 0
		for _, c := range cards {
			strength += rankStrength(c.Rank)
		}
		if len(cards) > bestLen || (len(cards) == bestLen && strength > bestStrength) {
			best, bestLen, bestStrength = s, len(cards), strength
		}
	}
	return best, bestLen, bestStrength
}

// nonTrump filters out trump cards.
func nonTrump(cards []engine.Card, trump engine.Suit) []engine.Card {
	var out []engine.Card
	for _, c := range cards {
		if c.Suit != trump {
			out = append(out, c)
		}
	}
	return out
}

// discardCheapest picks the two lowest-value cards, off-trump first.
func discardCheapest(hand []engine.Card, trump *engine.Suit) [2]engine.Card {
	pool := append([]engine.Card(nil), hand...)
	if trump != nil {
		if off := nonTrump(pool, *trump); len(off) >= 2 {
			pool = off
		}
	}
	first := lowestByPoints(pool)
	rest := make([]engine.Card, 0, len(pool)-1)
	for _, c := range pool {
		if c != first {
			rest = append(rest, c)
		}
	}
	return [2]engine.Card{first, lowestByPoints(rest)}
}
