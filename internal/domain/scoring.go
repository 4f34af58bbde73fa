package domain

// HandScore summarizes how a completed hand was scored.
type HandScore struct {
	Maker       Seat
	MakerTeam   Team
	MakerTricks int
	ScoringTeam Team
	Points      int
	March       bool
	Euchred     bool
	MatchWinner *Team
}

// scoreHand converts the finished hand's tricks into points, updates the
// match score, and either ends the match or returns the table to the lobby
// for the next deal.
func (g *Game) scoreHand() HandScore {
	maker := *g.Hand.Maker
	makerTeam := maker.Team()
	makerTricks := g.Hand.TricksTaken[makerTeam]

	score := HandScore{
		Maker:       maker,
		MakerTeam:   makerTeam,
		MakerTricks: makerTricks,
	}

	switch {
	case makerTricks == TricksPerHand:
		score.ScoringTeam = makerTeam
		score.Points = MarchPoints
		score.March = true
	case makerTricks >= MakerMinTricks:
		score.ScoringTeam = makerTeam
		score.Points = SinglePoints
	default:
		score.ScoringTeam = makerTeam.Other()
		score.Points = EuchrePoints
		score.Euchred = true
	}

	g.Score[score.ScoringTeam] += score.Points

	if g.Score[score.ScoringTeam] >= WinningScore {
		winner := score.ScoringTeam
		g.Winner = &winner
		score.MatchWinner = &winner
		g.Phase = PhaseFinished
		g.Hand = nil
		g.Bidding = BiddingRecord{}
		return score
	}

	// Hand state is discarded; the next deal re-creates it.
	g.Hand = nil
	g.Bidding = BiddingRecord{}
	for i := range g.Hands {
		g.Hands[i] = nil
	}
	g.Phase = PhaseLobby
	return score
}
