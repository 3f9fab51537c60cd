// Package analysis recommends moves to the human seat and grades a
// completed hand's decisions. It is strictly read-only over game state:
// a hint or a grade is never submitted as a transition, so there is
// nothing to undo.
package analysis

import (
	"fmt"

	"github.com/mvrdoljak/belot/engine"
	"github.com/mvrdoljak/belot/engine/bot"
)

// Hint recommends a card for seat using the same winning-card test the
// bot engines use: leading, a low trump or the lowest of the longest
// suit; following, the cheapest card that still wins, or the lowest card
// overall to conserve high cards.
func Hint(g *engine.GameState, seat engine.Seat) (engine.Card, string, error) {
	if g.Phase != engine.PhasePlay {
		return engine.Card{}, "", &engine.WrongPhaseError{Action: "hint", Phase: g.Phase}
	}
	legal := g.LegalMoves(seat)
	if len(legal) == 0 {
		return engine.Card{}, "", &engine.IllegalMoveError{Seat: seat}
	}
	trump := *g.Trump

	if len(g.CurrentTrick.Cards) == 0 {
		if trumps := filterSuit(legal, trump); len(trumps) > 0 {
			c := lowest(trumps)
			return c, fmt.Sprintf("lead a low trump (%s) to probe for higher trumps", c), nil
		}
		long := filterSuit(legal, longestSuit(legal))
		c := lowest(long)
		return c, fmt.Sprintf("lead %s, the lowest of your longest suit", c), nil
	}

	var winners []engine.Card
	for _, c := range legal {
		if bot.WinsTrick(g, seat, c) {
			winners = append(winners, c)
		}
	}
	if len(winners) > 0 {
		c := cheapest(winners)
		return c, fmt.Sprintf("%s wins the trick at the lowest cost", c), nil
	}

	c := lowest(legal)
	return c, fmt.Sprintf("no card can win; %s conserves your high cards", c), nil
}

func filterSuit(cards []engine.Card, s engine.Suit) []engine.Card {
	var out []engine.Card
	for _, c := range cards {
		if c.Suit == s {
			out = append(out, c)
		}
	}
	return out
}

func longestSuit(cards []engine.Card) engine.Suit {
	best := engine.Hearts
	bestLen := -1
	for _, s := range engine.Suits {
		if n := len(filterSuit(cards, s)); n > bestLen {
			best, bestLen = s, n
		}
	}
	return best
}

func lowest(cards []engine.Card) engine.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < low.Rank {
			low = c
		}
	}
	return low
}

func cheapest(cards []engine.Card) engine.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Points() < low.Points() || (c.Points() == low.Points() && c.Rank < low.Rank) {
			low = c
		}
	}
	return low
}
