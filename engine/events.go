package engine

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates the committed transition kinds recorded in the log.
type EventType string

const (
	EventBid           EventType = "bid"
	EventPass          EventType = "pass"
	EventPlayCard      EventType = "play_card"
	EventTrickComplete EventType = "trick_complete"
	EventHandComplete  EventType = "hand_complete"
)

// GameEvent is one append-only log entry. Entries are never mutated or
// removed; the log is the replay source for the analysis engine.
type GameEvent struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Seat      *Seat

	// Payload fields, populated per Type.
	Call        *TrumpCall    // bid
	Card        *Card         // play_card
	TrickWinner *Seat         // trick_complete
	TrickPoints int           // trick_complete
	HandScores  [NumTeams]int // hand_complete
	MatchScores [NumTeams]int // hand_complete
	BonusTeam   *Team         // hand_complete: team awarded the contract bonus
}

// appendEvent records a committed transition. Log length only grows.
func (g *GameState) appendEvent(ev GameEvent) {
	ev.ID = uuid.NewString()
	ev.Timestamp = time.Now()
	g.Events = append(g.Events, ev)
}

func seatRef(s Seat) *Seat { return &s }
