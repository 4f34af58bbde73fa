package bot

import (
	"fmt"

	"euchre/internal/domain"
)

// ActionKind identifies the move a bot wants to submit.
type ActionKind string

const (
	ActionOrderUp   ActionKind = "order_up"
	ActionPassBid   ActionKind = "pass_bid"
	ActionCallTrump ActionKind = "call_trump"
	ActionDiscard   ActionKind = "discard"
	ActionPlayCard  ActionKind = "play_card"
)

// Action is a single bot decision. Suit is set for call_trump, Card for
// discard and play_card.
type Action struct {
	Kind ActionKind
	Suit domain.Suit
	Card domain.Card
}

// callThreshold is the minimum hand strength at which a bot volunteers to
// make trump. Roughly three solid trump cards.
const callThreshold = 44

// Decide picks the bot's move for the current turn. The game must be in a
// phase where the seat is expected to act.
func Decide(g *domain.Game, seat domain.Seat) (Action, error) {
	switch g.Phase {
	case domain.PhaseBiddingRound1:
		return decideRoundOne(g, seat), nil
	case domain.PhaseBiddingRound2:
		return decideRoundTwo(g, seat), nil
	case domain.PhaseDealerDiscard:
		return decideDiscard(g, seat), nil
	case domain.PhasePlaying:
		return decidePlay(g, seat)
	default:
		return Action{}, fmt.Errorf("no bot decision for phase %s", g.Phase)
	}
}

func decideRoundOne(g *domain.Game, seat domain.Seat) Action {
	trump := g.Hand.Upcard.Suit
	strength := handStrength(g.Hands[seat], trump)
	// The dealer picks the upcard up on an order-up, so count it for them.
	if seat == g.Dealer {
		strength += cardWeight(*g.Hand.Upcard, trump)
	}
	if strength >= callThreshold {
		return Action{Kind: ActionOrderUp}
	}
	return Action{Kind: ActionPassBid}
}

func decideRoundTwo(g *domain.Game, seat domain.Seat) Action {
	forbidden := g.Hand.Upcard.Suit
	best := forbidden
	bestStrength := -1
	for _, s := range domain.Suits {
		if s == forbidden {
			continue
		}
		if strength := handStrength(g.Hands[seat], s); strength > bestStrength {
			best = s
			bestStrength = strength
		}
	}

	forced := seat == g.Dealer && g.Bidding.PassCount() == domain.NumSeats-1
	if forced || bestStrength >= callThreshold {
		return Action{Kind: ActionCallTrump, Suit: best}
	}
	return Action{Kind: ActionPassBid}
}

// decideDiscard drops the weakest of the dealer's six candidate cards.
func decideDiscard(g *domain.Game, seat domain.Seat) Action {
	trump := *g.Hand.Trump
	candidates := append(append([]domain.Card(nil), g.Hands[seat]...), *g.Hand.Upcard)

	worst := candidates[0]
	for _, c := range candidates[1:] {
		if cardWeight(c, trump) < cardWeight(worst, trump) {
			worst = c
		}
	}
	return Action{Kind: ActionDiscard, Card: worst}
}

func decidePlay(g *domain.Game, seat domain.Seat) (Action, error) {
	legal := g.LegalPlays(seat)
	if len(legal) == 0 {
		return Action{}, fmt.Errorf("no legal plays for seat %s", seat)
	}

	trump := *g.Hand.Trump
	trick := g.Hand.Trick

	if trick.LeadSuit == nil {
		// Leading: put out the strongest card to pressure the trick.
		best := legal[0]
		for _, c := range legal[1:] {
			if domain.Strength(c, trump, c.EffectiveSuit(trump)) > domain.Strength(best, trump, best.EffectiveSuit(trump)) {
				best = c
			}
		}
		return Action{Kind: ActionPlayCard, Card: best}, nil
	}

	lead := *trick.LeadSuit
	toBeat := 0
	for _, played := range trick.Plays {
		if s := domain.Strength(played, trump, lead); s > toBeat {
			toBeat = s
		}
	}

	// Play the cheapest card that still wins; otherwise dump the cheapest.
	var winner *domain.Card
	cheapest := legal[0]
	for i := range legal {
		c := legal[i]
		s := domain.Strength(c, trump, lead)
		if s > toBeat && (winner == nil || s < domain.Strength(*winner, trump, lead)) {
			winner = &legal[i]
		}
		if domain.Strength(c, trump, lead) < domain.Strength(cheapest, trump, lead) {
			cheapest = c
		}
	}
	if winner != nil {
		return Action{Kind: ActionPlayCard, Card: *winner}, nil
	}
	return Action{Kind: ActionPlayCard, Card: cheapest}, nil
}

// handStrength scores a hand for a prospective trump suit.
func handStrength(hand []domain.Card, trump domain.Suit) int {
	total := 0
	for _, c := range hand {
		total += cardWeight(c, trump)
	}
	return total
}

// cardWeight values a single card under the given trump: bowers dominate,
// other trump follow, and off-suit aces carry a little stopping power.
func cardWeight(c domain.Card, trump domain.Suit) int {
	switch {
	case c.IsRightBower(trump):
		return 30
	case c.IsLeftBower(trump):
		return 25
	case c.Suit == trump:
		return 12 + int(c.Rank)
	case c.Rank == domain.RankAce:
		return 6
	default:
		return 0
	}
}
