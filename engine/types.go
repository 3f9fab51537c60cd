package engine

import "fmt"

// Suit identifies one of the four card suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in canonical order.
var Suits = [4]Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Name returns the full lowercase suit name, for explanations.
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	case Spades:
		return "spades"
	default:
		return "unknown"
	}
}

// Rank identifies a card rank. The declared order Seven..Ace is the
// comparison order used for trick evaluation and run detection.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending comparison order.
var Ranks = [8]Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Points returns the trick-scoring value of the rank. The table is
// suit-independent: trump and non-trump cards score identically.
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 11
	case Ten:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	default:
		return 0
	}
}

// Card is an immutable (suit, rank) pair. Equality is value equality.
type Card struct {
	Suit Suit
	Rank Rank
}

// String encodes the card as rank followed by the suit initial, e.g. "10H".
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// Points returns the card's trick-scoring value.
func (c Card) Points() int { return c.Rank.Points() }

// Seat identifies one of the four fixed positions at the table.
// Seats 0 and 2 form one team, seats 1 and 3 the other.
type Seat int

const (
	South Seat = iota
	West
	North
	East

	NumSeats = 4
)

func (s Seat) String() string {
	switch s {
	case South:
		return "S"
	case West:
		return "W"
	case North:
		return "N"
	case East:
		return "E"
	default:
		return "?"
	}
}

// Next returns the seat to this seat's left in rotation order.
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// Team returns the team (0 or 1) the seat belongs to.
func (s Seat) Team() Team { return Team(s % 2) }

// Team identifies one of the two fixed partnerships.
type Team int

const (
	TeamSouthNorth Team = iota
	TeamWestEast

	NumTeams = 2
)

// Other returns the opposing team.
func (t Team) Other() Team { return 1 - t }

// Phase is the hand lifecycle state machine.
type Phase int

const (
	PhaseDeal Phase = iota
	PhaseBidding
	PhaseDealerChoice
	PhaseTalonExchange
	PhasePlay
	PhaseScoring
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDeal:
		return "deal"
	case PhaseBidding:
		return "bidding"
	case PhaseDealerChoice:
		return "dealerChoice"
	case PhaseTalonExchange:
		return "talonExchange"
	case PhasePlay:
		return "play"
	case PhaseScoring:
		return "scoring"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// TrumpCall records a bid: which seat called which suit at which level.
// Level supports raising; the base rule set only ever issues level 1.
type TrumpCall struct {
	Suit  Suit
	Seat  Seat
	Level int
}

// PlayedCard is one (seat, card) entry of a trick.
type PlayedCard struct {
	Seat Seat
	Card Card
}

// Trick holds 0-4 played cards. Winner and Points are set exactly when
// the fourth card lands, and never before.
type Trick struct {
	Cards  []PlayedCard
	Winner Seat
	Points int
	Done   bool
}

// LeadSuit returns the suit of the trick's first card. Only meaningful
// when the trick is non-empty.
func (t *Trick) LeadSuit() Suit {
	return t.Cards[0].Card.Suit
}

// DeclarationType enumerates the declarable meld families.
type DeclarationType int

const (
	DeclBela DeclarationType = iota
	DeclTierce
	DeclQuarte
	DeclQuint
	DeclBelot
)

func (d DeclarationType) String() string {
	switch d {
	case DeclBela:
		return "bela"
	case DeclTierce:
		return "tierce"
	case DeclQuarte:
		return "quarte"
	case DeclQuint:
		return "quint"
	case DeclBelot:
		return "belot"
	default:
		return "unknown"
	}
}

// Declaration is a scored meld detected in a seat's hand at the moment
// trump was fixed. It is not recomputed as cards are played.
type Declaration struct {
	Type   DeclarationType
	Seat   Seat
	Cards  []Card
	Points int
}
