package domain

// containsCard reports whether the card appears in the hand.
func containsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// removeCard returns a copy of the hand without the given card, or nil when
// the card is not present.
func removeCard(hand []Card, card Card) []Card {
	for i, c := range hand {
		if c == card {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			out = append(out, hand[i+1:]...)
			return out
		}
	}
	return nil
}

// hasEffectiveSuit reports whether any card in the hand belongs to the given
// effective suit under trump.
func hasEffectiveSuit(hand []Card, suit Suit, trump Suit) bool {
	for _, c := range hand {
		if c.EffectiveSuit(trump) == suit {
			return true
		}
	}
	return false
}
