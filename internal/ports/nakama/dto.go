package nakama

import (
	"euchre/internal/domain"
)

// MatchLabel is the indexed JSON label used for match listing queries.
type MatchLabel struct {
	Game  string `json:"game"`
	Open  int    `json:"open"`
	Phase string `json:"phase"`
}

// CallTrumpRequest names trump in the second bidding round.
type CallTrumpRequest struct {
	Suit domain.Suit `json:"suit"`
}

// DealerDiscardRequest resolves the dealer's pickup.
type DealerDiscardRequest struct {
	Card domain.Card `json:"card"`
}

// PlayCardRequest plays one card into the current trick.
type PlayCardRequest struct {
	Card domain.Card `json:"card"`
}

// PlayerInfo describes one occupied seat in a match snapshot.
type PlayerInfo struct {
	UserID      string      `json:"user_id"`
	Seat        domain.Seat `json:"seat"`
	DisplayName string      `json:"display_name"`
	IsBot       bool        `json:"is_bot"`
	Balance     int64       `json:"balance"`
}

// MatchSnapshot is the public view of a match broadcast after seat changes.
// It never contains any player's cards.
type MatchSnapshot struct {
	Phase      domain.Phase `json:"phase"`
	Seats      [4]string    `json:"seats"`
	Score      [2]int       `json:"score"`
	HandNumber int          `json:"hand_number"`
	Dealer     domain.Seat  `json:"dealer"`
	Turn       domain.Seat  `json:"turn"`
	Upcard     *domain.Card `json:"upcard,omitempty"`
	Trump      *domain.Suit `json:"trump,omitempty"`
	Players    []PlayerInfo `json:"players"`
}

// GameError is sent privately to the offending client.
type GameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// matchRecord is the shared storage document for a match. Private hands are
// persisted as separate owner-read records, never here.
type matchRecord struct {
	Phase      domain.Phase         `json:"phase"`
	Seats      [4]string            `json:"seats"`
	Score      [2]int               `json:"score"`
	HandNumber int                  `json:"hand_number"`
	Dealer     domain.Seat          `json:"dealer"`
	Turn       domain.Seat          `json:"turn"`
	Winner     *domain.Team         `json:"winner,omitempty"`
	Bidding    domain.BiddingRecord `json:"bidding"`
	Hand       *domain.HandState    `json:"hand,omitempty"`
}

// handRecord is a per-seat private storage document owned by the seat's user.
type handRecord struct {
	Seat  domain.Seat   `json:"seat"`
	Cards []domain.Card `json:"cards"`
}

func recordFromGame(g *domain.Game) *matchRecord {
	return &matchRecord{
		Phase:      g.Phase,
		Seats:      g.Seats,
		Score:      g.Score,
		HandNumber: g.HandNumber,
		Dealer:     g.Dealer,
		Turn:       g.Turn,
		Winner:     g.Winner,
		Bidding:    g.Bidding,
		Hand:       g.Hand,
	}
}

func (r *matchRecord) toGame() *domain.Game {
	return &domain.Game{
		Phase:      r.Phase,
		Seats:      r.Seats,
		Score:      r.Score,
		HandNumber: r.HandNumber,
		Dealer:     r.Dealer,
		Turn:       r.Turn,
		Winner:     r.Winner,
		Bidding:    r.Bidding,
		Hand:       r.Hand,
	}
}
