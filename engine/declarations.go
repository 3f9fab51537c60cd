package engine

import "sort"

// Meld point values.
const (
	BelaPoints   = 20
	TiercePoints = 20
	QuartePoints = 50
	QuintPoints  = 100

	// BelotPoints is the effectively match-winning value of holding a
	// full eight-card suit run.
	BelotPoints = 1001
)

// DetectDeclarations scans a hand for scoring melds against the given
// trump suit. Runs are maximal: a five-card run registers one quint, not
// the tierces and quartes inside it. Bela (trump king and queen) counts
// on its own, alongside any run containing those cards.
//
// The scan is pure; recomputing it on an unchanged hand returns the same
// set.
func DetectDeclarations(seat Seat, hand []Card, trump Suit) []Declaration {
	var decls []Declaration

	if d, ok := detectBela(seat, hand, trump); ok {
		decls = append(decls, d)
	}

	for _, suit := range Suits {
		ranks := ranksOfSuit(hand, suit)
		for _, run := range maximalRuns(ranks) {
			d, ok := runDeclaration(seat, suit, run)
			if !ok {
				continue
			}
			decls = append(decls, d)
		}
	}
	return decls
}

func detectBela(seat Seat, hand []Card, trump Suit) (Declaration, bool) {
	king := Card{Suit: trump, Rank: King}
	queen := Card{Suit: trump, Rank: Queen}
	if handIndex(hand, king) < 0 || handIndex(hand, queen) < 0 {
		return Declaration{}, false
	}
	return Declaration{
		Type:   DeclBela,
		Seat:   seat,
		Cards:  []Card{king, queen},
		Points: BelaPoints,
	}, true
}

// ranksOfSuit returns the sorted ranks the hand holds in one suit.
func ranksOfSuit(hand []Card, suit Suit) []Rank {
	var ranks []Rank
	for _, c := range hand {
		if c.Suit == suit {
			ranks = append(ranks, c.Rank)
		}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// maximalRuns splits sorted ranks into maximal consecutive runs.
func maximalRuns(ranks []Rank) [][]Rank {
	var runs [][]Rank
	for i := 0; i < len(ranks); {
		j := i + 1
		for j < len(ranks) && ranks[j] == ranks[j-1]+1 {
			j++
		}
		runs = append(runs, ranks[i:j])
		i = j
	}
	return runs
}

func runDeclaration(seat Seat, suit Suit, run []Rank) (Declaration, bool) {
	var (
		typ DeclarationType
		pts int
	)
	switch n := len(run); {
	case n < 3:
		return Declaration{}, false
	case n == 3:
		typ, pts = DeclTierce, TiercePoints
	case n == 4:
		typ, pts = DeclQuarte, QuartePoints
	case n < 8:
		typ, pts = DeclQuint, QuintPoints
	default:
		typ, pts = DeclBelot, BelotPoints
	}
	cards := make([]Card, len(run))
	for i, r := range run {
		cards[i] = Card{Suit: suit, Rank: r}
	}
	return Declaration{Type: typ, Seat: seat, Cards: cards, Points: pts}, true
}

// detectAllDeclarations runs the scan for every seat the moment trump is
// fixed. Skipped entirely when declarations are disabled.
func (g *GameState) detectAllDeclarations() {
	if !g.Rules.DeclarationsEnabled {
		return
	}
	for seat := Seat(0); seat < NumSeats; seat++ {
		g.Declarations = append(g.Declarations, DetectDeclarations(seat, g.Hands[seat], *g.Trump)...)
	}
}
