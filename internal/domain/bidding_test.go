package domain

import "testing"

// biddingGame builds a match mid-bid with a fixed dealer and upcard.
func biddingGame(dealer Seat, upcard Card) *Game {
	g := seatedGame()
	g.HandNumber = 1
	g.Dealer = dealer
	g.Turn = dealer.Next()
	g.Phase = PhaseBiddingRound1
	g.Bidding = BiddingRecord{Round: 1}
	g.Hand = &HandState{
		Upcard: &upcard,
		Kitty: []Card{
			{Suit: SuitClubs, Rank: RankNine},
			{Suit: SuitClubs, Rank: RankTen},
			{Suit: SuitDiamonds, Rank: RankNine},
		},
	}
	return g
}

func TestOrderUp(t *testing.T) {
	g := biddingGame(SeatNorth, Card{Suit: SuitHearts, Rank: RankQueen})

	if err := g.OrderUp(SeatSouth); err != ErrOutOfTurn {
		t.Fatalf("out of turn: err = %v, want ErrOutOfTurn", err)
	}
	if err := g.OrderUp(SeatEast); err != nil {
		t.Fatalf("OrderUp: %v", err)
	}

	if g.Phase != PhaseDealerDiscard {
		t.Errorf("phase = %s, want %s", g.Phase, PhaseDealerDiscard)
	}
	if g.Turn != SeatNorth {
		t.Errorf("turn = %s, want dealer %s", g.Turn, SeatNorth)
	}
	if g.Hand.Trump == nil || *g.Hand.Trump != SuitHearts {
		t.Errorf("trump = %v, want hearts", g.Hand.Trump)
	}
	if g.Hand.Maker == nil || *g.Hand.Maker != SeatEast {
		t.Errorf("maker = %v, want east", g.Hand.Maker)
	}
}

func TestPassBidRoundOneToRoundTwo(t *testing.T) {
	g := biddingGame(SeatNorth, Card{Suit: SuitHearts, Rank: RankQueen})

	for _, seat := range []Seat{SeatEast, SeatSouth, SeatWest, SeatNorth} {
		if err := g.PassBid(seat); err != nil {
			t.Fatalf("pass by %s: %v", seat, err)
		}
	}

	if g.Phase != PhaseBiddingRound2 {
		t.Fatalf("phase = %s, want %s", g.Phase, PhaseBiddingRound2)
	}
	if g.Bidding.Round != 2 {
		t.Errorf("round = %d, want 2", g.Bidding.Round)
	}
	if g.Bidding.PassCount() != 0 {
		t.Errorf("passes carried over into round 2: %d", g.Bidding.PassCount())
	}
	if g.Turn != SeatEast {
		t.Errorf("turn = %s, want left of dealer", g.Turn)
	}
}

func TestScrewTheDealer(t *testing.T) {
	g := biddingGame(SeatNorth, Card{Suit: SuitHearts, Rank: RankQueen})
	for _, seat := range []Seat{SeatEast, SeatSouth, SeatWest, SeatNorth} {
		if err := g.PassBid(seat); err != nil {
			t.Fatalf("round 1 pass by %s: %v", seat, err)
		}
	}
	for _, seat := range []Seat{SeatEast, SeatSouth, SeatWest} {
		if err := g.PassBid(seat); err != nil {
			t.Fatalf("round 2 pass by %s: %v", seat, err)
		}
	}

	if g.Turn != SeatNorth {
		t.Fatalf("turn = %s, want dealer forced to call", g.Turn)
	}
	if err := g.PassBid(SeatNorth); err != ErrIllegalBid {
		t.Fatalf("dealer pass: err = %v, want ErrIllegalBid", err)
	}
	// The rejection must not have mutated anything.
	if g.Phase != PhaseBiddingRound2 || g.Turn != SeatNorth || g.Bidding.PassCount() != 3 {
		t.Errorf("state changed by rejected pass: phase=%s turn=%s passes=%d",
			g.Phase, g.Turn, g.Bidding.PassCount())
	}

	if err := g.CallTrump(SeatNorth, SuitSpades); err != nil {
		t.Fatalf("forced call: %v", err)
	}
	if g.Phase != PhasePlaying {
		t.Errorf("phase = %s, want %s", g.Phase, PhasePlaying)
	}
}

func TestCallTrump(t *testing.T) {
	upcard := Card{Suit: SuitHearts, Rank: RankQueen}

	tests := []struct {
		name    string
		seat    Seat
		suit    Suit
		wantErr error
	}{
		{name: "UpcardSuitForbidden", seat: SeatEast, suit: SuitHearts, wantErr: ErrIllegalBid},
		{name: "OutOfTurn", seat: SeatWest, suit: SuitSpades, wantErr: ErrOutOfTurn},
		{name: "ValidCall", seat: SeatEast, suit: SuitDiamonds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := biddingGame(SeatNorth, upcard)
			g.Phase = PhaseBiddingRound2
			g.Bidding = BiddingRecord{Round: 2}

			err := g.CallTrump(tt.seat, tt.suit)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if *g.Hand.Trump != tt.suit || *g.Hand.Maker != tt.seat {
				t.Errorf("trump/maker = %v/%v, want %v/%v", *g.Hand.Trump, *g.Hand.Maker, tt.suit, tt.seat)
			}
			if g.Turn != SeatEast || g.Hand.Trick == nil || g.Hand.Trick.Number != 1 {
				t.Errorf("play not initialized: turn=%s trick=%+v", g.Turn, g.Hand.Trick)
			}
			if len(g.Hand.Kitty) != KittySize+1 {
				t.Errorf("kitty size = %d, want %d (turned-down upcard)", len(g.Hand.Kitty), KittySize+1)
			}
		})
	}
}

func TestBidPhaseMismatch(t *testing.T) {
	g := biddingGame(SeatNorth, Card{Suit: SuitHearts, Rank: RankQueen})
	g.Phase = PhasePlaying

	if err := g.OrderUp(SeatEast); err != ErrPhaseMismatch {
		t.Errorf("OrderUp: err = %v, want ErrPhaseMismatch", err)
	}
	if err := g.PassBid(SeatEast); err != ErrPhaseMismatch {
		t.Errorf("PassBid: err = %v, want ErrPhaseMismatch", err)
	}
	if err := g.CallTrump(SeatEast, SuitSpades); err != ErrPhaseMismatch {
		t.Errorf("CallTrump: err = %v, want ErrPhaseMismatch", err)
	}
}
