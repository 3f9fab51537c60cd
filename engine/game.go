// Package engine implements the rules core of a four-player Bela
// (Belote variant) card game: deck and deal, the bidding state machine,
// the legal-move oracle, trick resolution, meld detection and scoring.
//
// Every exported operation is a pure transition: it validates against the
// receiver, deep-copies it, mutates the copy and returns it. The prior
// state stays valid and inspectable, which is what lets the hint and
// analysis layers replay history against a live game without corrupting it.
// The engine never starts timers, performs I/O or spawns goroutines.
package engine

import "math/rand"

// BidRecord is one committed bidding action. Call is nil for a pass.
type BidRecord struct {
	Seat Seat
	Call *TrumpCall
}

// GameState is the single source of truth for one hand of a match.
type GameState struct {
	Rules Rules
	Phase Phase

	Dealer        Seat
	CurrentPlayer Seat

	Hands [NumSeats][]Card
	Talon []Card // face-down, length 0 or 2
	Table []Card // undealt remainder plus declarer discards

	// Trump and Declarer are nil until bidding resolves, then set
	// atomically together.
	Trump    *Suit
	Declarer *Seat

	StandingCall *TrumpCall
	Bids         []BidRecord
	passCount    int // passes since the last bid, or since bidding opened

	CurrentTrick    Trick
	CompletedTricks []Trick

	Declarations []Declaration

	HandScores  [NumTeams]int // final totals of the hand, set at scoring
	MatchScores [NumTeams]int

	Events []GameEvent
}

// NewMatch creates a fresh match in the deal phase. South deals first.
func NewMatch(rules Rules) *GameState {
	return &GameState{
		Rules:  rules,
		Phase:  PhaseDeal,
		Dealer: South,
	}
}

// DealHand shuffles a new deck from rng and deals the hand: two passes
// around the table, then the talon and the table pile. Bidding opens with
// the seat at the dealer's left.
//
// Scoring leaves the finished hand inspectable; the next deal is what
// discards it. Match scores and the event log carry across hands.
func (g *GameState) DealHand(rng *rand.Rand) (*GameState, error) {
	if g.Phase != PhaseDeal {
		return nil, &WrongPhaseError{Action: "deal", Phase: g.Phase}
	}
	ng := g.Clone()
	ng.Trump = nil
	ng.Declarer = nil
	ng.StandingCall = nil
	ng.Bids = nil
	ng.passCount = 0
	ng.CurrentTrick = Trick{}
	ng.CompletedTricks = nil
	ng.Declarations = nil
	ng.HandScores = [NumTeams]int{}
	deck := Shuffle(NewDeck(), rng)
	ng.Hands, ng.Talon, ng.Table = deal(deck, ng.Dealer)
	ng.Phase = PhaseBidding
	ng.CurrentPlayer = ng.Dealer.Next()
	return ng, nil
}

// Clone returns a deep copy sharing no mutable substructure with g.
func (g *GameState) Clone() *GameState {
	ng := *g
	for s := range g.Hands {
		ng.Hands[s] = append([]Card(nil), g.Hands[s]...)
	}
	ng.Talon = append([]Card(nil), g.Talon...)
	ng.Table = append([]Card(nil), g.Table...)
	if g.Trump != nil {
		t := *g.Trump
		ng.Trump = &t
	}
	if g.Declarer != nil {
		d := *g.Declarer
		ng.Declarer = &d
	}
	if g.StandingCall != nil {
		c := *g.StandingCall
		ng.StandingCall = &c
	}
	if g.Bids != nil {
		ng.Bids = make([]BidRecord, len(g.Bids))
		for i, b := range g.Bids {
			ng.Bids[i] = b
			if b.Call != nil {
				c := *b.Call
				ng.Bids[i].Call = &c
			}
		}
	}
	ng.CurrentTrick = cloneTrick(g.CurrentTrick)
	if g.CompletedTricks != nil {
		ng.CompletedTricks = make([]Trick, len(g.CompletedTricks))
		for i, t := range g.CompletedTricks {
			ng.CompletedTricks[i] = cloneTrick(t)
		}
	}
	if g.Declarations != nil {
		ng.Declarations = make([]Declaration, len(g.Declarations))
		for i, d := range g.Declarations {
			ng.Declarations[i] = d
			ng.Declarations[i].Cards = append([]Card(nil), d.Cards...)
		}
	}
	ng.Events = append([]GameEvent(nil), g.Events...)
	return &ng
}

func cloneTrick(t Trick) Trick {
	nt := t
	nt.Cards = append([]PlayedCard(nil), t.Cards...)
	return nt
}

// Hand returns the given seat's current hand. The returned slice is the
// live backing store; callers must not mutate it.
func (g *GameState) Hand(seat Seat) []Card { return g.Hands[seat] }

// IsDeclarer reports whether seat fixed the trump suit this hand.
func (g *GameState) IsDeclarer(seat Seat) bool {
	return g.Declarer != nil && *g.Declarer == seat
}

// hasSuit reports whether any card of the given suit is in hand.
func hasSuit(hand []Card, s Suit) bool {
	for _, c := range hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

// handIndex returns the position of card in hand, or -1.
func handIndex(hand []Card, card Card) int {
	for i, c := range hand {
		if c == card {
			return i
		}
	}
	return -1
}

// removeCard deletes card from hand in place and returns the shortened slice.
func removeCard(hand []Card, card Card) []Card {
	i := handIndex(hand, card)
	if i < 0 {
		return hand
	}
	return append(hand[:i], hand[i+1:]...)
}
