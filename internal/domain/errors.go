package domain

import "errors"

// Rule violations surfaced to the acting caller. None of these corrupt
// shared state: a transition that returns one commits nothing.
var (
	// ErrSeatConflict means the seat is occupied or the actor already holds one.
	ErrSeatConflict = errors.New("seat already occupied or actor already seated")
	// ErrOutOfTurn means the actor is not the current turn seat.
	ErrOutOfTurn = errors.New("not your turn")
	// ErrPhaseMismatch means the action does not belong to the current phase.
	ErrPhaseMismatch = errors.New("action not valid in current phase")
	// ErrIllegalBid covers a forced-dealer pass and naming the upcard suit in round 2.
	ErrIllegalBid = errors.New("illegal bid")
	// ErrIllegalDiscard covers discarding outside the dealer's six candidates.
	ErrIllegalDiscard = errors.New("illegal discard")
	// ErrIllegalPlay covers cards not in hand, duplicate plays, and follow-suit violations.
	ErrIllegalPlay = errors.New("illegal play")
	// ErrMatchFinished rejects any action once a team has reached the winning score.
	ErrMatchFinished = errors.New("match already finished")
	// ErrSeatsNotFilled rejects dealing while any seat is empty.
	ErrSeatsNotFilled = errors.New("all four seats must be occupied")
)
