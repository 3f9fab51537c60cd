package engine

// LegalMoves computes the set of cards seat may play right now. It is
// read-only and safe to call speculatively. For any non-empty hand the
// result is non-empty; calling it for an empty hand is a caller error
// (the phase should already have advanced).
//
// Priority order:
//  1. no trump fixed yet, or the trick is empty: the whole hand;
//  2. holding the lead suit: only lead-suit cards (must follow suit);
//  3. void in the lead suit with trump already in the trick: only trumps,
//     narrowed to strictly higher trumps when overtrumping is required
//     and possible;
//  4. otherwise: the whole hand.
func (g *GameState) LegalMoves(seat Seat) []Card {
	hand := g.Hands[seat]
	if g.Trump == nil || len(g.CurrentTrick.Cards) == 0 || !g.Rules.MustFollowSuit {
		return append([]Card(nil), hand...)
	}

	lead := g.CurrentTrick.LeadSuit()
	if hasSuit(hand, lead) {
		out := make([]Card, 0, len(hand))
		for _, c := range hand {
			if c.Suit == lead {
				out = append(out, c)
			}
		}
		return out
	}

	trump := *g.Trump
	if g.Rules.MustTrumpWhenVoid && g.trumpInTrick() && hasSuit(hand, trump) {
		trumps := make([]Card, 0, len(hand))
		for _, c := range hand {
			if c.Suit == trump {
				trumps = append(trumps, c)
			}
		}
		if g.Rules.OvertrumpRequired {
			if higher := overtrumps(trumps, g.highestTrumpInTrick()); len(higher) > 0 {
				return higher
			}
		}
		return trumps
	}

	return append([]Card(nil), hand...)
}

// trumpInTrick reports whether a trump card has already been played into
// the current trick.
func (g *GameState) trumpInTrick() bool {
	for _, pc := range g.CurrentTrick.Cards {
		if pc.Card.Suit == *g.Trump {
			return true
		}
	}
	return false
}

// highestTrumpInTrick returns the highest trump rank already in the
// current trick. Only meaningful when trumpInTrick holds.
func (g *GameState) highestTrumpInTrick() Rank {
	high := Seven
	for _, pc := range g.CurrentTrick.Cards {
		if pc.Card.Suit == *g.Trump && pc.Card.Rank >= high {
			high = pc.Card.Rank
		}
	}
	return high
}

// overtrumps filters trumps to those ranked strictly above high.
func overtrumps(trumps []Card, high Rank) []Card {
	var out []Card
	for _, c := range trumps {
		if c.Rank > high {
			out = append(out, c)
		}
	}
	return out
}
