package engine

import "fmt"

// The engine rejects invalid transitions synchronously with one of the
// error types below. A rejected transition leaves the prior state
// untouched; there is nothing to retry or roll back.

// IllegalMoveError reports a card that is absent from the legal-move set
// or not in the acting seat's hand.
type IllegalMoveError struct {
	Seat Seat
	Card Card
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: seat %s may not play %s", e.Seat, e.Card)
}

// WrongTurnError reports an action submitted by a seat other than the
// current player.
type WrongTurnError struct {
	Seat    Seat
	Current Seat
}

func (e *WrongTurnError) Error() string {
	return fmt.Sprintf("wrong turn: seat %s acted but it is %s's turn", e.Seat, e.Current)
}

// WrongPhaseError reports an action type incompatible with the current
// phase, e.g. a card play during bidding.
type WrongPhaseError struct {
	Action string
	Phase  Phase
}

func (e *WrongPhaseError) Error() string {
	return fmt.Sprintf("wrong phase: %s not allowed during %s", e.Action, e.Phase)
}

// EmptyTrickError reports trick evaluation attempted with zero cards.
type EmptyTrickError struct{}

func (e *EmptyTrickError) Error() string {
	return "cannot evaluate an empty trick"
}
