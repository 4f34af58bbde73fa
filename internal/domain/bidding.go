package domain

// OrderUp accepts the upcard's suit as trump during round 1. The actor
// becomes the maker and the dealer must pick up and discard next.
func (g *Game) OrderUp(seat Seat) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if g.Phase != PhaseBiddingRound1 {
		return ErrPhaseMismatch
	}
	if seat != g.Turn {
		return ErrOutOfTurn
	}

	trump := g.Hand.Upcard.Suit
	maker := seat
	g.Hand.Trump = &trump
	g.Hand.Maker = &maker
	g.Bidding.Caller = &maker
	g.Phase = PhaseDealerDiscard
	g.Turn = g.Dealer
	return nil
}

// PassBid records a pass in either bidding round. Four passes in round 1
// open round 2; in round 2 the dealer may not pass once the other three
// seats have passed.
func (g *Game) PassBid(seat Seat) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if g.Phase != PhaseBiddingRound1 && g.Phase != PhaseBiddingRound2 {
		return ErrPhaseMismatch
	}
	if seat != g.Turn {
		return ErrOutOfTurn
	}

	if g.Phase == PhaseBiddingRound2 && seat == g.Dealer && g.Bidding.PassCount() == NumSeats-1 {
		// Screw the dealer: the forced call may not be passed away.
		return ErrIllegalBid
	}

	g.Bidding.Passed[seat] = true

	if g.Phase == PhaseBiddingRound1 && g.Bidding.PassCount() == NumSeats {
		g.Bidding = BiddingRecord{Round: 2}
		g.Phase = PhaseBiddingRound2
		g.Turn = g.Dealer.Next()
		return nil
	}

	if g.Phase == PhaseBiddingRound2 && g.Bidding.PassCount() == NumSeats-1 {
		g.Turn = g.Dealer
		return nil
	}

	g.Turn = g.Turn.Next()
	return nil
}

// CallTrump names trump during round 2. Any suit except the turned-down
// upcard's suit is legal. The upcard goes to the kitty and play begins at
// the dealer's left.
func (g *Game) CallTrump(seat Seat, suit Suit) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if g.Phase != PhaseBiddingRound2 {
		return ErrPhaseMismatch
	}
	if seat != g.Turn {
		return ErrOutOfTurn
	}
	if suit == g.Hand.Upcard.Suit {
		return ErrIllegalBid
	}

	trump := suit
	maker := seat
	g.Hand.Trump = &trump
	g.Hand.Maker = &maker
	g.Bidding.Caller = &maker

	// The turned-down upcard joins the kitty face down.
	g.Hand.Kitty = append(g.Hand.Kitty, *g.Hand.Upcard)

	g.beginPlay()
	return nil
}

// beginPlay enters the playing phase with trick 1 led from the dealer's left.
func (g *Game) beginPlay() {
	lead := g.Dealer.Next()
	g.Phase = PhasePlaying
	g.Turn = lead
	g.Hand.Trick = &Trick{
		Number: 1,
		Lead:   lead,
		Plays:  make(map[Seat]Card, NumSeats),
	}
}
