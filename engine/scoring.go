package engine

// HandScore breaks down one team's result for a completed hand.
type HandScore struct {
	TrickPoints       int
	LastTrickBonus    int
	DeclarationPoints int
	ContractBonus     int
}

// Total returns the team's final hand score.
func (h HandScore) Total() int {
	return h.TrickPoints + h.LastTrickBonus + h.DeclarationPoints + h.ContractBonus
}

// scoreHand aggregates the finished hand into team scores and the running
// match score, then advances to the next deal or ends the match. Runs
// exactly once, when the last trick resolves.
func (g *GameState) scoreHand() {
	var scores [NumTeams]HandScore

	for _, t := range g.CompletedTricks {
		scores[t.Winner.Team()].TrickPoints += t.Points
	}

	last := g.CompletedTricks[len(g.CompletedTricks)-1]
	lastTeam := last.Winner.Team()

	// Cards never played (the table pile, and the talon when nobody
	// claimed it) score for the side that took the last trick.
	for _, c := range g.Table {
		scores[lastTeam].TrickPoints += c.Points()
	}
	for _, c := range g.Talon {
		scores[lastTeam].TrickPoints += c.Points()
	}

	if g.Rules.LastTrickBonus {
		scores[lastTeam].LastTrickBonus = 10
	}

	for _, d := range g.Declarations {
		scores[d.Seat.Team()].DeclarationPoints += d.Points
	}

	// Contract: the declarer's team must strictly clear the threshold on
	// its pre-bonus combined total; the flat bonus goes to whichever side
	// that outcome favors, never both.
	declTeam := g.Declarer.Team()
	bonusTeam := declTeam.Other()
	if scores[declTeam].Total() > g.Rules.ContractThreshold {
		bonusTeam = declTeam
	}
	scores[bonusTeam].ContractBonus = g.Rules.ContractBonus

	for team := range scores {
		g.HandScores[team] = scores[team].Total()
		g.MatchScores[team] += g.HandScores[team]
	}

	g.appendEvent(GameEvent{
		Type:        EventHandComplete,
		HandScores:  g.HandScores,
		MatchScores: g.MatchScores,
		BonusTeam:   &bonusTeam,
	})

	if g.matchOver() {
		g.Phase = PhaseGameOver
		return
	}
	g.Phase = PhaseDeal
	g.Dealer = g.Dealer.Next()
}

// matchOver reports whether either team has reached the match target.
func (g *GameState) matchOver() bool {
	for _, s := range g.MatchScores {
		if s >= g.Rules.MatchTargetScore {
			return true
		}
	}
	return false
}

// Winner returns the winning team once the match is over.
func (g *GameState) Winner() (Team, bool) {
	if g.Phase != PhaseGameOver {
		return 0, false
	}
	if g.MatchScores[0] >= g.MatchScores[1] {
		return 0, true
	}
	return 1, true
}
