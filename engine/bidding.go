package engine

// Bid claims the talon for seat by calling trump in the given suit. The
// first call is level 1; a later call outbids the standing one at the next
// level. Bidding stays open for raises until three consecutive passes
// finalize the standing call.
func (g *GameState) Bid(seat Seat, suit Suit) (*GameState, error) {
	if g.Phase != PhaseBidding {
		return nil, &WrongPhaseError{Action: "bid", Phase: g.Phase}
	}
	if seat != g.CurrentPlayer {
		return nil, &WrongTurnError{Seat: seat, Current: g.CurrentPlayer}
	}

	level := 1
	if g.StandingCall != nil {
		level = g.StandingCall.Level + 1
	}
	call := TrumpCall{Suit: suit, Seat: seat, Level: level}

	ng := g.Clone()
	ng.StandingCall = &call
	ng.Bids = append(ng.Bids, BidRecord{Seat: seat, Call: &call})
	ng.passCount = 0
	ng.appendEvent(GameEvent{Type: EventBid, Seat: seatRef(seat), Call: &call})
	ng.CurrentPlayer = seat.Next()
	return ng, nil
}

// PassBid records a pass for seat. While the talon is unclaimed a pass
// only rotates the turn; four passes with no call ever made hand the
// choice to the dealer. Once a call stands, the third consecutive pass
// finalizes it.
func (g *GameState) PassBid(seat Seat) (*GameState, error) {
	if g.Phase != PhaseBidding {
		return nil, &WrongPhaseError{Action: "pass", Phase: g.Phase}
	}
	if seat != g.CurrentPlayer {
		return nil, &WrongTurnError{Seat: seat, Current: g.CurrentPlayer}
	}

	ng := g.Clone()
	ng.Bids = append(ng.Bids, BidRecord{Seat: seat})
	ng.passCount++
	ng.appendEvent(GameEvent{Type: EventPass, Seat: seatRef(seat)})

	if ng.StandingCall == nil {
		if ng.passCount == NumSeats {
			ng.Phase = PhaseDealerChoice
			ng.CurrentPlayer = ng.Dealer
			return ng, nil
		}
	} else if ng.passCount == NumSeats-1 {
		ng.finalizeBidding()
		return ng, nil
	}

	ng.CurrentPlayer = seat.Next()
	return ng, nil
}

// finalizeBidding commits the standing call: trump and declarer are set
// together, the talon moves into the declarer's hand and melds are
// detected for every seat from the hands as they stand right now. The
// declarer must then discard back down before play.
func (g *GameState) finalizeBidding() {
	call := g.StandingCall
	trump := call.Suit
	declarer := call.Seat
	g.Trump = &trump
	g.Declarer = &declarer

	g.Hands[declarer] = append(g.Hands[declarer], g.Talon...)
	sortForDisplay(g.Hands[declarer])
	g.Talon = nil

	g.detectAllDeclarations()
	g.Phase = PhaseTalonExchange
	g.CurrentPlayer = declarer
}

// ChooseTrump resolves the dealer-choice phase: after four opening passes
// the dealer must pick a trump suit unconditionally. No talon is awarded;
// it stays face down on the table and the dealer keeps the dealt hand.
func (g *GameState) ChooseTrump(seat Seat, suit Suit) (*GameState, error) {
	if g.Phase != PhaseDealerChoice {
		return nil, &WrongPhaseError{Action: "dealer choice", Phase: g.Phase}
	}
	if seat != g.Dealer {
		return nil, &WrongTurnError{Seat: seat, Current: g.Dealer}
	}

	ng := g.Clone()
	call := TrumpCall{Suit: suit, Seat: seat, Level: 1}
	trump := suit
	declarer := seat
	ng.Trump = &trump
	ng.Declarer = &declarer
	ng.Bids = append(ng.Bids, BidRecord{Seat: seat, Call: &call})
	ng.appendEvent(GameEvent{Type: EventBid, Seat: seatRef(seat), Call: &call})

	ng.Table = append(ng.Table, ng.Talon...)
	ng.Talon = nil

	ng.detectAllDeclarations()
	ng.Phase = PhasePlay
	ng.CurrentPlayer = declarer
	return ng, nil
}

// DiscardTalon returns two cards from the declarer's enlarged hand to the
// table pile and opens play with the declarer leading.
func (g *GameState) DiscardTalon(seat Seat, discards [TalonSize]Card) (*GameState, error) {
	if g.Phase != PhaseTalonExchange {
		return nil, &WrongPhaseError{Action: "discard", Phase: g.Phase}
	}
	if !g.IsDeclarer(seat) || seat != g.CurrentPlayer {
		return nil, &WrongTurnError{Seat: seat, Current: g.CurrentPlayer}
	}
	if discards[0] == discards[1] {
		return nil, &IllegalMoveError{Seat: seat, Card: discards[1]}
	}
	for _, c := range discards {
		if handIndex(g.Hands[seat], c) < 0 {
			return nil, &IllegalMoveError{Seat: seat, Card: c}
		}
	}

	ng := g.Clone()
	for _, c := range discards {
		ng.Hands[seat] = removeCard(ng.Hands[seat], c)
		ng.Table = append(ng.Table, c)
	}
	ng.Phase = PhasePlay
	ng.CurrentPlayer = seat
	return ng, nil
}
