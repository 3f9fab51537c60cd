package bot

import (
	"fmt"

	"github.com/mvrdoljak/belot/engine"
)

// Advanced is the tier-2 strategy. It bids on a weighted hand-strength
// score and picks moves by scoring every legal card with a heuristic,
// taking the maximum and breaking ties by encounter order.
type Advanced struct{}

var _ Strategy = Advanced{}

func (Advanced) Name() string { return "advanced" }

// advancedBidThreshold is the weighted hand strength needed to call.
const advancedBidThreshold = 20

// Move-scoring weights.
const (
	rewardWinTrick     = 10
	rewardLeadTrump    = 8
	rewardSequenceLead = 4
	penaltySingleton   = 3
)

func (Advanced) ChooseBid(g *engine.GameState, seat engine.Seat) (engine.Suit, bool, string) {
	suit, score := bestTrumpCandidate(g.Hand(seat))
	if score >= advancedBidThreshold {
		return suit, true, fmt.Sprintf("bidding %s: weighted hand strength %d", suit.Name(), score)
	}
	return 0, false, fmt.Sprintf("passing: best weighted strength only %d", score)
}

func (Advanced) ChooseTrump(g *engine.GameState, seat engine.Seat) (engine.Suit, string) {
	suit, score := bestTrumpCandidate(g.Hand(seat))
	return suit, fmt.Sprintf("forced choice: %s scores best at %d", suit.Name(), score)
}

func (Advanced) ChooseDiscard(g *engine.GameState, seat engine.Seat) ([2]engine.Card, string) {
	return discardCheapest(g.Hand(seat), g.Trump), "keeping trump and high cards, returning the cheapest pair"
}

func (a Advanced) ChooseMove(g *engine.GameState, seat engine.Seat) (engine.Card, string, error) {
	if g.Trump == nil {
		return engine.Card{}, "", &engine.WrongPhaseError{Action: "choose move", Phase: g.Phase}
	}
	legal := g.LegalMoves(seat)
	if len(legal) == 0 {
		return engine.Card{}, "", &engine.IllegalMoveError{Seat: seat}
	}

	best := legal[0]
	bestScore := moveScore(g, seat, legal[0])
	for _, c := range legal[1:] {
		if s := moveScore(g, seat, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, explainMove(g, seat, best), nil
}

// moveScore rates one legal card in the current trick context.
func moveScore(g *engine.GameState, seat engine.Seat, c engine.Card) int {
	trump := *g.Trump
	hand := g.Hand(seat)
	score := 0

	if len(g.CurrentTrick.Cards) == 0 {
		if c.Suit == trump {
			score += rewardLeadTrump
		}
		if sequenceAdjacent(hand, c) {
			score += rewardSequenceLead
		}
		// Prefer keeping high cards back when opening a suit.
		score += int(engine.Ace) - int(c.Rank)
	} else if WinsTrick(g, seat, c) {
		// Winning with the cheapest sufficient card scores highest.
		score += rewardWinTrick + int(engine.Ace) - int(c.Rank)
	} else {
		score += int(engine.Ace) - int(c.Rank)
	}

	if c.Suit != trump && len(suitCards(hand, c.Suit)) == 1 {
		score -= penaltySingleton
	}
	return score
}

// sequenceAdjacent reports whether the hand holds a neighbouring rank of
// the same suit.
func sequenceAdjacent(hand []engine.Card, c engine.Card) bool {
	for _, o := range hand {
		if o.Suit != c.Suit || o == c {
			continue
		}
		if o.Rank == c.Rank+1 || o.Rank+1 == c.Rank {
			return true
		}
	}
	return false
}

func explainMove(g *engine.GameState, seat engine.Seat, c engine.Card) string {
	trump := *g.Trump
	switch {
	case len(g.CurrentTrick.Cards) == 0 && c.Suit == trump:
		return fmt.Sprintf("leading trump %s to draw out higher cards", c)
	case len(g.CurrentTrick.Cards) == 0:
		return fmt.Sprintf("leading %s, keeping stronger cards guarded", c)
	case WinsTrick(g, seat, c):
		return fmt.Sprintf("winning the trick cheaply with %s", c)
	default:
		return fmt.Sprintf("cannot win, shedding %s", c)
	}
}

// bestTrumpCandidate scores each suit as a trump candidate: card point
// values with would-be trumps weighted 1.5x, plus a length bonus for
// four-card or longer suits.
func bestTrumpCandidate(hand []engine.Card) (engine.Suit, int) {
	best := engine.Hearts
	bestScore := -1
	for _, s := range engine.Suits {
		score := 0
		for _, c := range hand {
			w := c.Points()
			if c.Suit == s {
				w = w * 3 / 2
			}
			score += w
		}
		for _, o := range engine.Suits {
			if n := len(suitCards(hand, o)); n >= 4 {
				score += 4 * (n - 3)
			}
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best, bestScore
}
