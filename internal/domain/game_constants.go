package domain

const (
	// HandSize is the number of cards dealt to each seat.
	HandSize = 5
	// DeckSize is the full Euchre deck: ranks 9-A across four suits.
	DeckSize = 24
	// KittySize is the number of undealt cards after the upcard is turned.
	KittySize = 3
	// TricksPerHand is the number of tricks in a hand.
	TricksPerHand = 5

	// WinningScore ends the match once either team reaches it.
	WinningScore = 10
	// MakerMinTricks is the trick count the maker's team needs to score at all.
	MakerMinTricks = 3
	// SinglePoints is awarded for taking 3 or 4 tricks as maker.
	SinglePoints = 1
	// MarchPoints is awarded for taking all 5 tricks as maker.
	MarchPoints = 2
	// EuchrePoints is awarded to the defenders when the maker falls short.
	EuchrePoints = 2
)
