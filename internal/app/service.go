package app

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"euchre/internal/domain"
	"euchre/internal/ports"
)

// Service contains the Euchre use-cases. Every mutating method runs as one
// optimistic transaction against the match store; rule logic itself lives in
// the domain package.
type Service struct {
	store ports.StorePort
	rng   *rand.Rand
}

// NewService constructs a Service with the provided store and rng. A nil rng
// falls back to a time-seeded source.
func NewService(store ports.StorePort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{store: store, rng: rng}
}

var (
	// ErrNotSeated means the acting user holds no seat in this match.
	ErrNotSeated = errors.New("actor is not seated at this match")
	// ErrNoFreeSeat means every seat is occupied.
	ErrNoFreeSeat = errors.New("no free seat available")
)

// Snapshot returns the committed game state without mutating anything.
func (s *Service) Snapshot(ctx context.Context, matchID string) (*domain.Game, error) {
	rec, err := s.store.LoadGame(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return rec.Game, nil
}

// JoinSeat claims the lowest free seat for the user.
func (s *Service) JoinSeat(ctx context.Context, matchID, userID string) (domain.Seat, []Event, error) {
	var claimed domain.Seat
	events, err := s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
			if g.Seats[seat] != "" {
				continue
			}
			if err := g.ClaimSeat(seat, userID); err != nil {
				return nil, err
			}
			claimed = seat
			return []Event{{
				Kind:    EventSeatClaimed,
				Payload: SeatClaimedPayload{Seat: seat, UserID: userID},
			}}, nil
		}
		return nil, ErrNoFreeSeat
	})
	return claimed, events, err
}

// LeaveSeat frees the user's seat, if held.
func (s *Service) LeaveSeat(ctx context.Context, matchID, userID string) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.ReleaseSeat(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		return []Event{{
			Kind:    EventSeatReleased,
			Payload: SeatReleasedPayload{Seat: seat, UserID: userID},
		}}, nil
	})
}

// TakeOverSeat reseats an occupied seat under a new user in one transaction.
// The seat keeps its cards, so a replacement mid-hand can keep playing where
// the leaver stopped.
func (s *Service) TakeOverSeat(ctx context.Context, matchID, oldUserID, newUserID string) (domain.Seat, []Event, error) {
	var taken domain.Seat
	events, err := s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, err := g.TakeOverSeat(oldUserID, newUserID)
		if err != nil {
			return nil, err
		}
		taken = seat
		return []Event{
			{
				Kind:    EventSeatReleased,
				Payload: SeatReleasedPayload{Seat: seat, UserID: oldUserID},
			},
			{
				Kind:    EventSeatClaimed,
				Payload: SeatClaimedPayload{Seat: seat, UserID: newUserID},
			},
		}, nil
	})
	return taken, events, err
}

// StartHand deals the next hand. Any seated player may request the deal once
// all four seats are filled.
func (s *Service) StartHand(ctx context.Context, matchID, userID string) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		if _, ok := g.SeatOf(userID); !ok {
			return nil, ErrNotSeated
		}
		if err := g.StartHand(s.rng); err != nil {
			return nil, err
		}

		events := make([]Event, 0, domain.NumSeats+1)
		events = append(events, Event{
			Kind: EventHandStarted,
			Payload: HandStartedPayload{
				HandNumber: g.HandNumber,
				Dealer:     g.Dealer,
				Upcard:     *g.Hand.Upcard,
				Turn:       g.Turn,
			},
		})
		for seat := domain.SeatNorth; seat < domain.NumSeats; seat++ {
			events = append(events, Event{
				Kind: EventHandDealt,
				Payload: HandDealtPayload{
					Seat:  seat,
					Cards: append([]domain.Card(nil), g.Hands[seat]...),
				},
				Recipients: []string{g.Seats[seat]},
			})
		}
		return events, nil
	})
}

// EndMatch removes all stored records for a match. Used when a table is torn
// down with no humans left.
func (s *Service) EndMatch(ctx context.Context, matchID string) error {
	return s.store.DeleteGame(ctx, matchID)
}

// OrderUp accepts the upcard suit as trump on behalf of the user's seat.
func (s *Service) OrderUp(ctx context.Context, matchID, userID string) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.SeatOf(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		if err := g.OrderUp(seat); err != nil {
			return nil, err
		}
		return []Event{{
			Kind: EventTrumpOrdered,
			Payload: TrumpOrderedPayload{
				Seat:  seat,
				Trump: *g.Hand.Trump,
				Turn:  g.Turn,
			},
		}}, nil
	})
}

// PassBid records a bidding pass for the user's seat.
func (s *Service) PassBid(ctx context.Context, matchID, userID string) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.SeatOf(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		if err := g.PassBid(seat); err != nil {
			return nil, err
		}
		return []Event{{
			Kind: EventBidPassed,
			Payload: BidPassedPayload{
				Seat:  seat,
				Round: g.Bidding.Round,
				Turn:  g.Turn,
			},
		}}, nil
	})
}

// CallTrump names trump in round 2 for the user's seat.
func (s *Service) CallTrump(ctx context.Context, matchID, userID string, suit domain.Suit) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.SeatOf(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		if err := g.CallTrump(seat, suit); err != nil {
			return nil, err
		}
		return []Event{{
			Kind: EventTrumpCalled,
			Payload: TrumpCalledPayload{
				Seat:  seat,
				Trump: suit,
				Turn:  g.Turn,
			},
		}}, nil
	})
}

// DealerDiscard resolves the dealer's pickup. The dealer's refreshed hand is
// re-sent privately since it changed outside normal play.
func (s *Service) DealerDiscard(ctx context.Context, matchID, userID string, card domain.Card) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.SeatOf(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		if err := g.DealerDiscard(seat, card); err != nil {
			return nil, err
		}
		return []Event{
			{
				Kind:    EventDealerDiscarded,
				Payload: DealerDiscardedPayload{Dealer: seat, Turn: g.Turn},
			},
			{
				Kind: EventHandDealt,
				Payload: HandDealtPayload{
					Seat:  seat,
					Cards: append([]domain.Card(nil), g.Hands[seat]...),
				},
				Recipients: []string{userID},
			},
		}, nil
	})
}

// PlayCard plays a card for the user's seat and emits the chain of events a
// completed trick or hand produces.
func (s *Service) PlayCard(ctx context.Context, matchID, userID string, card domain.Card) ([]Event, error) {
	return s.runTx(ctx, matchID, func(g *domain.Game) ([]Event, error) {
		seat, ok := g.SeatOf(userID)
		if !ok {
			return nil, ErrNotSeated
		}
		res, err := g.PlayCard(seat, card)
		if err != nil {
			return nil, err
		}

		events := []Event{{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: seat, Card: card, Turn: g.Turn},
		}}

		if !res.TrickComplete {
			return events, nil
		}
		trickNumber := domain.TricksPerHand
		if g.Hand != nil && g.Hand.Trick != nil {
			trickNumber = g.Hand.Trick.Number - 1
		}
		events = append(events, Event{
			Kind:    EventTrickWon,
			Payload: TrickWonPayload{Seat: res.TrickWinner, TrickNumber: trickNumber},
		})

		if !res.HandComplete {
			return events, nil
		}
		hs := res.HandScore
		events = append(events, Event{
			Kind: EventHandScored,
			Payload: HandScoredPayload{
				Maker:       hs.Maker,
				MakerTricks: hs.MakerTricks,
				ScoringTeam: hs.ScoringTeam,
				Points:      hs.Points,
				March:       hs.March,
				Euchred:     hs.Euchred,
				Score:       g.Score,
			},
		})
		if hs.MatchWinner != nil {
			events = append(events, Event{
				Kind:    EventMatchEnded,
				Payload: MatchEndedPayload{Winner: *hs.MatchWinner, Score: g.Score},
			})
		}
		return events, nil
	})
}
