package engine

// cardBeats reports whether challenger beats the currently winning card.
// bestIsFirstTrump marks best as the first trump played in the trick: the
// first trump loses to any later trump, so rank comparison only applies
// among trumps once a second one has appeared. Between non-trumps only a
// higher card of the same suit wins; an off-suit non-trump never wins.
func cardBeats(challenger, best Card, trump Suit, bestIsFirstTrump bool) bool {
	challengerTrump := challenger.Suit == trump
	bestTrump := best.Suit == trump

	switch {
	case challengerTrump && !bestTrump:
		return true
	case !challengerTrump && bestTrump:
		return false
	case challengerTrump && bestTrump:
		if bestIsFirstTrump {
			return true
		}
		return challenger.Rank > best.Rank
	default:
		return challenger.Suit == best.Suit && challenger.Rank > best.Rank
	}
}

// EvaluateTrick returns the seat whose card is undominated under cardBeats.
// Evaluating an empty trick is a caller error.
func EvaluateTrick(t *Trick, trump Suit) (Seat, error) {
	if len(t.Cards) == 0 {
		return 0, &EmptyTrickError{}
	}
	best := t.Cards[0]
	bestIsFirstTrump := best.Card.Suit == trump
	for _, pc := range t.Cards[1:] {
		if cardBeats(pc.Card, best.Card, trump, bestIsFirstTrump) {
			// A non-trump best implies no trump has appeared yet, so a
			// winning trump challenger is the trick's first trump.
			bestIsFirstTrump = pc.Card.Suit == trump && best.Card.Suit != trump
			best = pc
		}
	}
	return best.Seat, nil
}

// ScoreTrick sums the point values of the trick's cards. The point table
// is suit-independent in this rule variant; trump cards score the same as
// plain ones.
func ScoreTrick(t *Trick) int {
	pts := 0
	for _, pc := range t.Cards {
		pts += pc.Card.Points()
	}
	return pts
}
