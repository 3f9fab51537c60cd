package engine

import (
	"math/rand"
	"testing"
)

func dealtGame(t *testing.T, seed int64) *GameState {
	t.Helper()
	g, err := NewMatch(DefaultRules()).DealHand(rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	return g
}

func mustPass(t *testing.T, g *GameState, seat Seat) *GameState {
	t.Helper()
	ng, err := g.PassBid(seat)
	if err != nil {
		t.Fatalf("pass %s: %v", seat, err)
	}
	return ng
}

// TestBiddingOpensLeftOfDealer: the first seat to speak is the dealer's
// left and a card play is rejected with WrongPhaseError.
func TestBiddingOpensLeftOfDealer(t *testing.T) {
	g := dealtGame(t, 1)
	if g.Phase != PhaseBidding {
		t.Fatalf("phase = %s, want bidding", g.Phase)
	}
	if g.CurrentPlayer != g.Dealer.Next() {
		t.Fatalf("current = %s, want %s", g.CurrentPlayer, g.Dealer.Next())
	}
	if _, err := g.PlayCard(g.CurrentPlayer, g.Hands[g.CurrentPlayer][0]); err == nil {
		t.Fatal("expected WrongPhaseError for play during bidding")
	} else if _, ok := err.(*WrongPhaseError); !ok {
		t.Fatalf("expected *WrongPhaseError, got %T", err)
	}
}

// TestBidOutOfTurnRejected: only the current player may act, and the
// rejected transition leaves the prior state untouched.
func TestBidOutOfTurnRejected(t *testing.T) {
	g := dealtGame(t, 2)
	wrong := g.CurrentPlayer.Next()
	before := len(g.Bids)
	if _, err := g.Bid(wrong, Hearts); err == nil {
		t.Fatal("expected WrongTurnError")
	} else if _, ok := err.(*WrongTurnError); !ok {
		t.Fatalf("expected *WrongTurnError, got %T", err)
	}
	if len(g.Bids) != before {
		t.Fatal("rejected bid mutated the prior state")
	}
}

// TestBidThenThreePassesFinalizes: a standing call plus three consecutive
// passes fixes trump and declarer atomically, moves the talon into the
// declarer's hand and opens the talon exchange.
func TestBidThenThreePassesFinalizes(t *testing.T) {
	g := dealtGame(t, 3)
	bidder := g.CurrentPlayer
	talon := append([]Card(nil), g.Talon...)

	g2, err := g.Bid(bidder, Clubs)
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	if g2.Trump != nil || g2.Declarer != nil {
		t.Fatal("trump/declarer must stay unset until bidding finalizes")
	}
	g3 := mustPass(t, g2, g2.CurrentPlayer)
	g4 := mustPass(t, g3, g3.CurrentPlayer)
	g5 := mustPass(t, g4, g4.CurrentPlayer)

	if g5.Phase != PhaseTalonExchange {
		t.Fatalf("phase = %s, want talonExchange", g5.Phase)
	}
	if g5.Trump == nil || g5.Declarer == nil {
		t.Fatal("trump and declarer must be set together at finalization")
	}
	if *g5.Trump != Clubs || *g5.Declarer != bidder {
		t.Fatalf("finalized as trump %s declarer %s", *g5.Trump, *g5.Declarer)
	}
	if len(g5.Talon) != 0 {
		t.Fatalf("talon still holds %d cards after the claim", len(g5.Talon))
	}
	if len(g5.Hands[bidder]) != HandSize+TalonSize {
		t.Fatalf("declarer holds %d cards, want %d", len(g5.Hands[bidder]), HandSize+TalonSize)
	}
	for _, c := range talon {
		if handIndex(g5.Hands[bidder], c) < 0 {
			t.Errorf("talon card %s missing from declarer's hand", c)
		}
	}
	if !g5.IsDeclarer(bidder) {
		t.Error("declarer flag not set for the bidder")
	}
}

// TestRaiseResetsPassCount: a raise after two passes needs three fresh
// passes before bidding finalizes.
func TestRaiseResetsPassCount(t *testing.T) {
	g := dealtGame(t, 4)
	first := g.CurrentPlayer

	g, err := g.Bid(first, Hearts)
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	g = mustPass(t, g, g.CurrentPlayer)
	g = mustPass(t, g, g.CurrentPlayer)

	raiser := g.CurrentPlayer
	g, err = g.Bid(raiser, Spades)
	if err != nil {
		t.Fatalf("raise: %v", err)
	}
	if g.Phase != PhaseBidding {
		t.Fatalf("phase = %s after raise, want bidding", g.Phase)
	}
	if g.StandingCall.Level != 2 || g.StandingCall.Seat != raiser {
		t.Fatalf("standing call = %+v, want level 2 by %s", g.StandingCall, raiser)
	}

	g = mustPass(t, g, g.CurrentPlayer)
	g = mustPass(t, g, g.CurrentPlayer)
	if g.Phase != PhaseBidding {
		t.Fatal("two passes after a raise must not finalize")
	}
	g = mustPass(t, g, g.CurrentPlayer)
	if g.Phase != PhaseTalonExchange {
		t.Fatalf("phase = %s, want talonExchange", g.Phase)
	}
	if *g.Trump != Spades || *g.Declarer != raiser {
		t.Fatalf("raise did not win: trump %s declarer %s", *g.Trump, *g.Declarer)
	}
}

// TestAllFourPassGoesToDealerChoice: nobody ever claims the talon, so the
// dealer must pick a suit; the talon stays unclaimed at two cards.
func TestAllFourPassGoesToDealerChoice(t *testing.T) {
	g := dealtGame(t, 5)
	for i := 0; i < NumSeats; i++ {
		g = mustPass(t, g, g.CurrentPlayer)
	}
	if g.Phase != PhaseDealerChoice {
		t.Fatalf("phase = %s, want dealerChoice", g.Phase)
	}
	if len(g.Talon) != TalonSize {
		t.Fatalf("talon length %d, want %d (unclaimed)", len(g.Talon), TalonSize)
	}
	if g.CurrentPlayer != g.Dealer {
		t.Fatalf("current = %s, want the dealer %s", g.CurrentPlayer, g.Dealer)
	}

	dealerHand := len(g.Hands[g.Dealer])
	g2, err := g.ChooseTrump(g.Dealer, Diamonds)
	if err != nil {
		t.Fatalf("dealer choice: %v", err)
	}
	if g2.Phase != PhasePlay {
		t.Fatalf("phase = %s, want play", g2.Phase)
	}
	if *g2.Trump != Diamonds || *g2.Declarer != g.Dealer {
		t.Fatal("dealer choice must make the dealer declarer with the chosen trump")
	}
	if len(g2.Hands[g.Dealer]) != dealerHand {
		t.Fatal("dealer keeps the original hand; no talon is awarded")
	}
	if g2.CurrentPlayer != g.Dealer {
		t.Fatal("the declarer leads the first trick")
	}
}

// TestDiscardTalonOpensPlay: the declarer returns two held cards and
// leads the first trick with a hand back at regulation size.
func TestDiscardTalonOpensPlay(t *testing.T) {
	g := dealtGame(t, 6)
	bidder := g.CurrentPlayer
	g, err := g.Bid(bidder, Hearts)
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	for i := 0; i < NumSeats-1; i++ {
		g = mustPass(t, g, g.CurrentPlayer)
	}

	hand := g.Hands[bidder]
	discards := [TalonSize]Card{hand[len(hand)-1], hand[len(hand)-2]}

	// A card not in hand is rejected.
	var foreign Card
	for _, c := range NewDeck() {
		if handIndex(hand, c) < 0 {
			foreign = c
			break
		}
	}
	if _, err := g.DiscardTalon(bidder, [TalonSize]Card{hand[0], foreign}); err == nil {
		t.Fatal("expected IllegalMoveError for discarding an unheld card")
	}

	g2, err := g.DiscardTalon(bidder, discards)
	if err != nil {
		t.Fatalf("discard: %v", err)
	}
	if g2.Phase != PhasePlay {
		t.Fatalf("phase = %s, want play", g2.Phase)
	}
	if len(g2.Hands[bidder]) != HandSize {
		t.Fatalf("declarer holds %d cards after discard, want %d", len(g2.Hands[bidder]), HandSize)
	}
	if g2.CurrentPlayer != bidder {
		t.Fatal("the declarer leads after the exchange")
	}
	for _, c := range discards {
		if handIndex(g2.Hands[bidder], c) >= 0 {
			t.Errorf("discarded card %s still in hand", c)
		}
	}
}
