package engine

import (
	"math/rand"
	"reflect"
	"testing"
)

func hand(cards ...Card) []Card { return cards }

func declTypes(decls []Declaration) map[DeclarationType]int {
	counts := make(map[DeclarationType]int)
	for _, d := range decls {
		counts[d.Type]++
	}
	return counts
}

// TestDetectBela: trump king and queen together score 20, and the same
// pair off trump scores nothing.
func TestDetectBela(t *testing.T) {
	h := hand(
		Card{Hearts, King}, Card{Hearts, Queen},
		Card{Spades, Ace}, Card{Clubs, Ten},
	)
	decls := DetectDeclarations(South, h, Hearts)
	if len(decls) != 1 || decls[0].Type != DeclBela {
		t.Fatalf("decls = %+v, want a single bela", decls)
	}
	if decls[0].Points != BelaPoints {
		t.Fatalf("bela points = %d, want %d", decls[0].Points, BelaPoints)
	}
	if got := DetectDeclarations(South, h, Spades); len(got) != 0 {
		t.Fatalf("king/queen off trump scored %+v", got)
	}
}

func TestDetectRuns(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		typ  DeclarationType
		pts  int
	}{
		{
			"tierce",
			hand(Card{Clubs, Seven}, Card{Clubs, Eight}, Card{Clubs, Nine}),
			DeclTierce, TiercePoints,
		},
		{
			"quarte",
			hand(Card{Diamonds, Ten}, Card{Diamonds, Jack}, Card{Diamonds, Queen}, Card{Diamonds, King}),
			DeclQuarte, QuartePoints,
		},
		{
			"quint",
			hand(Card{Spades, Nine}, Card{Spades, Ten}, Card{Spades, Jack}, Card{Spades, Queen}, Card{Spades, King}),
			DeclQuint, QuintPoints,
		},
		{
			"belot",
			hand(
				Card{Hearts, Seven}, Card{Hearts, Eight}, Card{Hearts, Nine}, Card{Hearts, Ten},
				Card{Hearts, Jack}, Card{Hearts, Queen}, Card{Hearts, King}, Card{Hearts, Ace},
			),
			DeclBelot, BelotPoints,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Trump a suit the run does not live in so bela stays out.
			trump := Clubs
			if tt.hand[0].Suit == Clubs {
				trump = Hearts
			}
			decls := DetectDeclarations(West, tt.hand, trump)
			if len(decls) != 1 {
				t.Fatalf("decls = %+v, want exactly one", decls)
			}
			d := decls[0]
			if d.Type != tt.typ || d.Points != tt.pts {
				t.Fatalf("got %v worth %d, want %v worth %d", d.Type, d.Points, tt.typ, tt.pts)
			}
			if len(d.Cards) != len(tt.hand) {
				t.Fatalf("declared %d cards, want %d", len(d.Cards), len(tt.hand))
			}
		})
	}
}

// TestRunsAreMaximal: a five-card run is one quint, never the tierces and
// quartes nested inside it, and a gap splits runs cleanly.
func TestRunsAreMaximal(t *testing.T) {
	h := hand(
		Card{Spades, Seven}, Card{Spades, Eight}, Card{Spades, Nine},
		Card{Spades, Ten}, Card{Spades, Jack},
		// Gap at queen, then a short tail too small to score.
		Card{Spades, King}, Card{Spades, Ace},
	)
	decls := DetectDeclarations(North, h, Hearts)
	counts := declTypes(decls)
	want := map[DeclarationType]int{DeclQuint: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

// TestRunsSpanSuitsIndependently: runs in different suits each score.
func TestRunsSpanSuitsIndependently(t *testing.T) {
	h := hand(
		Card{Clubs, Seven}, Card{Clubs, Eight}, Card{Clubs, Nine},
		Card{Diamonds, Queen}, Card{Diamonds, King}, Card{Diamonds, Ace},
	)
	counts := declTypes(DetectDeclarations(East, h, Hearts))
	if counts[DeclTierce] != 2 {
		t.Fatalf("counts = %v, want two tierces", counts)
	}
}

// TestBelaStacksWithRun: a trump run through king and queen scores both
// the run and the bela.
func TestBelaStacksWithRun(t *testing.T) {
	h := hand(
		Card{Hearts, Jack}, Card{Hearts, Queen}, Card{Hearts, King}, Card{Hearts, Ace},
	)
	counts := declTypes(DetectDeclarations(South, h, Hearts))
	want := map[DeclarationType]int{DeclBela: 1, DeclQuarte: 1}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

// TestDetectionIsPure: scanning the same hand twice yields identical
// results and never mutates the hand.
func TestDetectionIsPure(t *testing.T) {
	h := hand(
		Card{Hearts, King}, Card{Hearts, Queen},
		Card{Clubs, Seven}, Card{Clubs, Eight}, Card{Clubs, Nine},
	)
	snapshot := append([]Card(nil), h...)
	first := DetectDeclarations(South, h, Hearts)
	second := DetectDeclarations(South, h, Hearts)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated detection diverged on an unchanged hand")
	}
	if !reflect.DeepEqual(h, snapshot) {
		t.Fatal("detection mutated the hand")
	}
}

// TestDeclarationsDisabled: with melds switched off, finalized bidding
// records none.
func TestDeclarationsDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.DeclarationsEnabled = false
	g, err := NewMatch(rules).DealHand(rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	g, err = g.Bid(g.CurrentPlayer, Hearts)
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	for i := 0; i < NumSeats-1; i++ {
		g = mustPass(t, g, g.CurrentPlayer)
	}
	if len(g.Declarations) != 0 {
		t.Fatalf("declarations recorded while disabled: %+v", g.Declarations)
	}
}
