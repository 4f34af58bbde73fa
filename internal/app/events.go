package app

import "euchre/internal/domain"

// EventKind identifies emitted app events for dispatch to clients.
type EventKind string

const (
	EventSeatClaimed     EventKind = "seat_claimed"
	EventSeatReleased    EventKind = "seat_released"
	EventHandStarted     EventKind = "hand_started"
	EventHandDealt       EventKind = "hand_dealt"
	EventTrumpOrdered    EventKind = "trump_ordered"
	EventBidPassed       EventKind = "bid_passed"
	EventTrumpCalled     EventKind = "trump_called"
	EventDealerDiscarded EventKind = "dealer_discarded"
	EventCardPlayed      EventKind = "card_played"
	EventTrickWon        EventKind = "trick_won"
	EventHandScored      EventKind = "hand_scored"
	EventMatchEnded      EventKind = "match_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type SeatClaimedPayload struct {
	Seat   domain.Seat `json:"seat"`
	UserID string      `json:"user_id"`
}

type SeatReleasedPayload struct {
	Seat   domain.Seat `json:"seat"`
	UserID string      `json:"user_id"`
}

type HandStartedPayload struct {
	HandNumber int         `json:"hand_number"`
	Dealer     domain.Seat `json:"dealer"`
	Upcard     domain.Card `json:"upcard"`
	Turn       domain.Seat `json:"turn"`
}

// HandDealtPayload is private: it is delivered only to the seat's occupant.
type HandDealtPayload struct {
	Seat  domain.Seat   `json:"seat"`
	Cards []domain.Card `json:"cards"`
}

type TrumpOrderedPayload struct {
	Seat  domain.Seat `json:"seat"`
	Trump domain.Suit `json:"trump"`
	Turn  domain.Seat `json:"turn"` // the dealer, who must now discard
}

type BidPassedPayload struct {
	Seat  domain.Seat `json:"seat"`
	Round int         `json:"round"` // round now in progress
	Turn  domain.Seat `json:"turn"`
}

type TrumpCalledPayload struct {
	Seat  domain.Seat `json:"seat"`
	Trump domain.Suit `json:"trump"`
	Turn  domain.Seat `json:"turn"`
}

type DealerDiscardedPayload struct {
	Dealer domain.Seat `json:"dealer"`
	Turn   domain.Seat `json:"turn"`
}

type CardPlayedPayload struct {
	Seat domain.Seat `json:"seat"`
	Card domain.Card `json:"card"`
	Turn domain.Seat `json:"turn"`
}

type TrickWonPayload struct {
	Seat        domain.Seat `json:"seat"`
	TrickNumber int         `json:"trick_number"`
}

type HandScoredPayload struct {
	Maker       domain.Seat `json:"maker"`
	MakerTricks int         `json:"maker_tricks"`
	ScoringTeam domain.Team `json:"scoring_team"`
	Points      int         `json:"points"`
	March       bool        `json:"march"`
	Euchred     bool        `json:"euchred"`
	Score       [2]int      `json:"score"`
}

type MatchEndedPayload struct {
	Winner domain.Team `json:"winner"`
	Score  [2]int      `json:"score"`
}
