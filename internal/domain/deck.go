package domain

import "math/rand"

// NewDeck returns the ordered 24-card Euchre deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a uniformly shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// StartHand deals the next hand: five cards to each seat starting left of
// the dealer, one card per seat per round, then the upcard and kitty. The
// dealer rotates clockwise on every hand after the first.
func (g *Game) StartHand(rng *rand.Rand) error {
	if g.Phase == PhaseFinished {
		return ErrMatchFinished
	}
	if g.Phase != PhaseLobby {
		return ErrPhaseMismatch
	}
	if g.OccupiedSeats() != NumSeats {
		return ErrSeatsNotFilled
	}

	if g.HandNumber == 0 {
		g.Dealer = Seat(rng.Intn(NumSeats))
	} else {
		g.Dealer = g.Dealer.Next()
	}
	g.HandNumber++

	deck := ShuffleDeck(NewDeck(), rng)

	for i := range g.Hands {
		g.Hands[i] = nil
	}
	idx := 0
	for round := 0; round < HandSize; round++ {
		seat := g.Dealer.Next()
		for i := 0; i < NumSeats; i++ {
			g.Hands[seat] = append(g.Hands[seat], deck[idx])
			idx++
			seat = seat.Next()
		}
	}

	upcard := deck[idx]
	idx++
	kitty := append([]Card(nil), deck[idx:]...)

	g.Hand = &HandState{
		Upcard: &upcard,
		Kitty:  kitty,
	}
	g.Bidding = BiddingRecord{Round: 1}
	g.Phase = PhaseBiddingRound1
	g.Turn = g.Dealer.Next()
	return nil
}
