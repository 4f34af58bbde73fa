package domain

// Phase represents the lifecycle stage of a Euchre match.
type Phase string

const (
	// PhaseLobby is the state between hands where seats can change and a
	// new hand may be dealt.
	PhaseLobby Phase = "lobby"
	// PhaseBiddingRound1 is the first bidding round over the upcard.
	PhaseBiddingRound1 Phase = "bidding_round_1"
	// PhaseBiddingRound2 is the open trump-naming round.
	PhaseBiddingRound2 Phase = "bidding_round_2"
	// PhaseDealerDiscard is the dealer's pickup/discard step after an order-up.
	PhaseDealerDiscard Phase = "dealer_discard"
	// PhasePlaying is the trick-play state.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the terminal state once a team reaches the winning score.
	PhaseFinished Phase = "finished"
)

// Suit is one of the four card suits.
type Suit string

const (
	SuitSpades   Suit = "S"
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
)

// Suits lists all suits in a stable order.
var Suits = [4]Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}

// Rank is a card rank in ascending plain-suit order.
type Rank int

const (
	RankNine Rank = iota
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

// Ranks lists the six Euchre ranks in ascending order.
var Ranks = [6]Rank{RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce}

func (r Rank) String() string {
	switch r {
	case RankNine:
		return "9"
	case RankTen:
		return "10"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return "?"
	}
}

// Card is a single card in the 24-card Euchre deck.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + string(c.Suit)
}

// Seat is a fixed table position. Seats never move; display rotation is a
// client concern.
type Seat int

const (
	SeatNorth Seat = iota
	SeatEast
	SeatSouth
	SeatWest
)

// NumSeats is the number of table positions.
const NumSeats = 4

// Next returns the seat to the left, clockwise N->E->S->W->N.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

func (s Seat) String() string {
	switch s {
	case SeatNorth:
		return "N"
	case SeatEast:
		return "E"
	case SeatSouth:
		return "S"
	case SeatWest:
		return "W"
	default:
		return "?"
	}
}

// Team identifies one of the two fixed partnerships.
type Team int

const (
	// TeamNS is the North/South partnership.
	TeamNS Team = iota
	// TeamEW is the East/West partnership.
	TeamEW
)

// Team returns the partnership a seat belongs to.
func (s Seat) Team() Team {
	if s == SeatNorth || s == SeatSouth {
		return TeamNS
	}
	return TeamEW
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamNS {
		return TeamEW
	}
	return TeamNS
}

func (t Team) String() string {
	if t == TeamNS {
		return "NS"
	}
	return "EW"
}

// BiddingRecord tracks the trump negotiation across its two rounds.
type BiddingRecord struct {
	Round  int     `json:"round"` // 1 or 2; 0 when not bidding
	Passed [4]bool `json:"passed"`
	Caller *Seat   `json:"caller,omitempty"`
}

// PassCount returns how many seats have passed in the current round.
func (b *BiddingRecord) PassCount() int {
	n := 0
	for _, p := range b.Passed {
		if p {
			n++
		}
	}
	return n
}

// Trick is the in-progress trick: who led, the effective lead suit, and the
// cards played so far (at most one per seat).
type Trick struct {
	Number   int           `json:"number"` // 1..5
	Lead     Seat          `json:"lead"`
	LeadSuit *Suit         `json:"lead_suit,omitempty"`
	Plays    map[Seat]Card `json:"plays"`
}

// HandState is the per-hand state, created fresh each deal and discarded
// once the hand is scored.
type HandState struct {
	Trump        *Suit  `json:"trump,omitempty"`
	Maker        *Seat  `json:"maker,omitempty"`
	Upcard       *Card  `json:"upcard,omitempty"`
	Kitty        []Card `json:"kitty"`
	TricksTaken  [2]int `json:"tricks_taken"` // indexed by Team
	TrickWinners []Seat `json:"trick_winners"`
	Trick        *Trick `json:"trick,omitempty"`
}

// Game holds the authoritative state for one Euchre match. Hands are private
// per seat and are persisted separately from the shared match record; the
// engine never copies them into broadcast state.
type Game struct {
	Phase      Phase
	Seats      [4]string // seat -> occupant user ID, "" when empty
	Score      [2]int    // indexed by Team, monotonically non-decreasing
	HandNumber int
	Dealer     Seat
	Turn       Seat
	Winner     *Team
	Bidding    BiddingRecord
	Hand       *HandState
	Hands      [4][]Card // seat -> private hand
}

// NewGame creates a match in the lobby with no seats claimed.
func NewGame() *Game {
	return &Game{Phase: PhaseLobby}
}

// SeatOf returns the seat occupied by the given user.
func (g *Game) SeatOf(userID string) (Seat, bool) {
	if userID == "" {
		return 0, false
	}
	for i, occ := range g.Seats {
		if occ == userID {
			return Seat(i), true
		}
	}
	return 0, false
}

// OccupiedSeats returns the number of claimed seats.
func (g *Game) OccupiedSeats() int {
	n := 0
	for _, occ := range g.Seats {
		if occ != "" {
			n++
		}
	}
	return n
}

// ClaimSeat seats a user at the given position. A user holds at most one
// seat and a seat holds at most one user.
func (g *Game) ClaimSeat(seat Seat, userID string) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if userID == "" {
		return ErrSeatConflict
	}
	if g.Seats[seat] != "" {
		return ErrSeatConflict
	}
	if _, taken := g.SeatOf(userID); taken {
		return ErrSeatConflict
	}
	g.Seats[seat] = userID
	return nil
}

// TakeOverSeat hands the seat held by oldUserID to newUserID in place. The
// seat's cards stay with the seat, so a hand in progress can continue under
// the new occupant.
func (g *Game) TakeOverSeat(oldUserID, newUserID string) (Seat, error) {
	if g.Phase == PhaseFinished {
		return 0, ErrMatchFinished
	}
	if newUserID == "" {
		return 0, ErrSeatConflict
	}
	seat, ok := g.SeatOf(oldUserID)
	if !ok {
		return 0, ErrSeatConflict
	}
	if _, taken := g.SeatOf(newUserID); taken {
		return 0, ErrSeatConflict
	}
	g.Seats[seat] = newUserID
	return seat, nil
}

// ReleaseSeat frees the seat held by the given user, if any.
func (g *Game) ReleaseSeat(userID string) (Seat, bool) {
	seat, ok := g.SeatOf(userID)
	if !ok {
		return 0, false
	}
	g.Seats[seat] = ""
	return seat, true
}
