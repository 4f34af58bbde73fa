package domain

// SameColor returns the other suit of the same color: spades<->clubs,
// hearts<->diamonds. The Jack of this suit is the left bower.
func SameColor(s Suit) Suit {
	switch s {
	case SuitSpades:
		return SuitClubs
	case SuitClubs:
		return SuitSpades
	case SuitHearts:
		return SuitDiamonds
	default:
		return SuitHearts
	}
}

// EffectiveSuit is the card's suit for legality and ranking purposes: the
// printed suit, except the left bower counts as trump.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.Rank == RankJack && c.Suit == SameColor(trump) {
		return trump
	}
	return c.Suit
}

// IsRightBower reports whether the card is the Jack of trump.
func (c Card) IsRightBower(trump Suit) bool {
	return c.Rank == RankJack && c.Suit == trump
}

// IsLeftBower reports whether the card is the Jack of the same-color suit.
func (c Card) IsLeftBower(trump Suit) bool {
	return c.Rank == RankJack && c.Suit == SameColor(trump)
}

// Strength ranks a card within a trick, given trump and the effective lead
// suit. Higher wins; cards that can never win the trick rank below every
// lead-suit card. Strength is unique per card, so ties are impossible.
func Strength(c Card, trump Suit, lead Suit) int {
	if c.IsRightBower(trump) {
		return 100
	}
	if c.IsLeftBower(trump) {
		return 99
	}
	if c.Suit == trump {
		return 80 + int(c.Rank)
	}
	if c.Suit == lead {
		return 60 + int(c.Rank)
	}
	return int(c.Rank)
}

// LegalPlay reports whether the seat may play the card in the current
// trick: leading is always legal, otherwise the card must follow the lead's
// effective suit when the hand can.
func (g *Game) LegalPlay(seat Seat, card Card) bool {
	t := g.Hand.Trick
	if t.LeadSuit == nil {
		return true
	}
	trump := *g.Hand.Trump
	if card.EffectiveSuit(trump) == *t.LeadSuit {
		return true
	}
	return !hasEffectiveSuit(g.Hands[seat], *t.LeadSuit, trump)
}

// LegalPlays returns the subset of the seat's hand that may be played now.
func (g *Game) LegalPlays(seat Seat) []Card {
	out := make([]Card, 0, len(g.Hands[seat]))
	for _, c := range g.Hands[seat] {
		if g.LegalPlay(seat, c) {
			out = append(out, c)
		}
	}
	return out
}

// trickWinner returns the seat holding the strongest card of a complete trick.
func trickWinner(t *Trick, trump Suit) Seat {
	best := t.Lead
	bestStrength := -1
	seat := t.Lead
	for i := 0; i < NumSeats; i++ {
		if c, ok := t.Plays[seat]; ok {
			if s := Strength(c, trump, *t.LeadSuit); s > bestStrength {
				bestStrength = s
				best = seat
			}
		}
		seat = seat.Next()
	}
	return best
}

// PlayResult describes what a successful play caused beyond the card landing
// in the trick.
type PlayResult struct {
	TrickComplete bool
	TrickWinner   Seat
	HandComplete  bool
	HandScore     *HandScore
}

// PlayCard plays a card from the seat's hand into the current trick. The
// removal from the hand and the insertion into the trick happen on the same
// state value, so a caller persisting the result commits both or neither.
// Completing the fourth play resolves the trick; resolving the fifth trick
// scores the hand.
func (g *Game) PlayCard(seat Seat, card Card) (PlayResult, error) {
	if g.Phase == PhaseFinished {
		return PlayResult{}, ErrMatchFinished
	}
	if g.Phase != PhasePlaying {
		return PlayResult{}, ErrPhaseMismatch
	}
	if seat != g.Turn {
		return PlayResult{}, ErrOutOfTurn
	}
	t := g.Hand.Trick
	if _, played := t.Plays[seat]; played {
		return PlayResult{}, ErrIllegalPlay
	}
	if !containsCard(g.Hands[seat], card) {
		return PlayResult{}, ErrIllegalPlay
	}
	if !g.LegalPlay(seat, card) {
		return PlayResult{}, ErrIllegalPlay
	}

	trump := *g.Hand.Trump
	g.Hands[seat] = removeCard(g.Hands[seat], card)
	t.Plays[seat] = card
	if t.LeadSuit == nil {
		lead := card.EffectiveSuit(trump)
		t.LeadSuit = &lead
	}

	if len(t.Plays) < NumSeats {
		g.Turn = g.Turn.Next()
		return PlayResult{}, nil
	}

	winner := trickWinner(t, trump)
	g.Hand.TricksTaken[winner.Team()]++
	g.Hand.TrickWinners = append(g.Hand.TrickWinners, winner)

	res := PlayResult{TrickComplete: true, TrickWinner: winner}

	if t.Number == TricksPerHand {
		score := g.scoreHand()
		res.HandComplete = true
		res.HandScore = &score
		return res, nil
	}

	// Winner leads the next trick.
	g.Turn = winner
	g.Hand.Trick = &Trick{
		Number: t.Number + 1,
		Lead:   winner,
		Plays:  make(map[Seat]Card, NumSeats),
	}
	return res, nil
}
