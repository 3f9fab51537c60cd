package engine

import (
	"math/rand"
	"sort"
)

const (
	// DeckSize is the number of distinct cards: 4 suits x 8 ranks.
	DeckSize = 32

	// HandSize is the number of cards each seat holds at the start of play.
	HandSize = 7

	// TalonSize is the number of face-down cards set aside during the deal,
	// awarded to the seat that claims the bid.
	TalonSize = 2

	// TableSize is the number of undealt cards left on the table. The
	// declarer's talon discards join this pile.
	TableSize = 2

	// TricksPerHand is the number of tricks in a completed hand.
	TricksPerHand = HandSize
)

// NewDeck returns the 32 distinct cards in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Shuffle returns a uniformly shuffled copy of deck drawn from rng.
// The caller owns the RNG so tests can supply a fixed seed and assert
// exact deals.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// dealPasses is the per-seat card count of each dealing pass. Two passes,
// rotation order from the dealer's left, 28 cards into hands; the next two
// form the talon and the final two stay on the table.
var dealPasses = [2]int{4, 3}

// deal splits a shuffled deck into four hands, the talon and the table pile.
func deal(deck []Card, dealer Seat) (hands [NumSeats][]Card, talon, table []Card) {
	idx := 0
	for _, n := range dealPasses {
		seat := dealer.Next()
		for i := 0; i < NumSeats; i++ {
			hands[seat] = append(hands[seat], deck[idx:idx+n]...)
			idx += n
			seat = seat.Next()
		}
	}
	talon = append([]Card(nil), deck[idx:idx+TalonSize]...)
	idx += TalonSize
	table = append([]Card(nil), deck[idx:]...)

	for s := range hands {
		sortForDisplay(hands[s])
	}
	return hands, talon, table
}

// sortForDisplay orders a hand by suit groups, descending rank within each.
// The ordering is cosmetic; legality and evaluation never depend on it.
func sortForDisplay(hand []Card) {
	sort.SliceStable(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit < hand[j].Suit
		}
		return hand[i].Rank > hand[j].Rank
	})
}
