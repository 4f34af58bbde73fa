package domain

// DealerDiscard resolves the dealer's pickup: the stored five-card hand and
// the upcard form six candidates, exactly one of which (the upcard included)
// is discarded to the kitty. The remaining five become the dealer's hand and
// play begins.
func (g *Game) DealerDiscard(seat Seat, discard Card) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if g.Phase != PhaseDealerDiscard {
		return ErrPhaseMismatch
	}
	if seat != g.Dealer || seat != g.Turn {
		return ErrOutOfTurn
	}
	if len(g.Hands[seat]) != HandSize {
		return ErrIllegalDiscard
	}

	candidates := append(append([]Card(nil), g.Hands[seat]...), *g.Hand.Upcard)
	kept := removeCard(candidates, discard)
	if kept == nil {
		return ErrIllegalDiscard
	}
	if len(kept) != HandSize {
		return ErrIllegalDiscard
	}

	g.Hands[seat] = kept
	g.Hand.Kitty = append(g.Hand.Kitty, discard)
	g.beginPlay()
	return nil
}
