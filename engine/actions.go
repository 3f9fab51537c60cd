package engine

// PlayCard commits seat playing card into the current trick. The card
// must be in the seat's hand and in the legal-move set; rejected plays
// leave the prior state untouched. Completing the fourth card resolves
// the trick, and resolving the last trick of the hand runs scoring.
func (g *GameState) PlayCard(seat Seat, card Card) (*GameState, error) {
	if g.Phase != PhasePlay {
		return nil, &WrongPhaseError{Action: "play card", Phase: g.Phase}
	}
	if seat != g.CurrentPlayer {
		return nil, &WrongTurnError{Seat: seat, Current: g.CurrentPlayer}
	}
	if handIndex(g.Hands[seat], card) < 0 {
		return nil, &IllegalMoveError{Seat: seat, Card: card}
	}
	if !containsCard(g.LegalMoves(seat), card) {
		return nil, &IllegalMoveError{Seat: seat, Card: card}
	}

	ng := g.Clone()
	ng.Hands[seat] = removeCard(ng.Hands[seat], card)
	ng.CurrentTrick.Cards = append(ng.CurrentTrick.Cards, PlayedCard{Seat: seat, Card: card})
	c := card
	ng.appendEvent(GameEvent{Type: EventPlayCard, Seat: seatRef(seat), Card: &c})

	if len(ng.CurrentTrick.Cards) < NumSeats {
		ng.CurrentPlayer = seat.Next()
		return ng, nil
	}

	if err := ng.resolveTrick(); err != nil {
		return nil, err
	}
	return ng, nil
}

// resolveTrick finalizes a full trick: winner and points are set together,
// the trick moves into history and the winner leads the next one. The
// last trick of the hand advances into scoring instead.
func (g *GameState) resolveTrick() error {
	winner, err := EvaluateTrick(&g.CurrentTrick, *g.Trump)
	if err != nil {
		return err
	}
	g.CurrentTrick.Winner = winner
	g.CurrentTrick.Points = ScoreTrick(&g.CurrentTrick)
	g.CurrentTrick.Done = true
	g.appendEvent(GameEvent{
		Type:        EventTrickComplete,
		TrickWinner: seatRef(winner),
		TrickPoints: g.CurrentTrick.Points,
	})

	g.CompletedTricks = append(g.CompletedTricks, g.CurrentTrick)
	g.CurrentTrick = Trick{}
	g.CurrentPlayer = winner

	if len(g.Hands[winner]) == 0 {
		g.Phase = PhaseScoring
		g.scoreHand()
	}
	return nil
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
