package analysis

import (
	"fmt"
	"strings"

	"github.com/mvrdoljak/belot/engine"
)

// MaxHandScore is the score a perfect hand is measured against when
// computing efficiency.
const MaxHandScore = 256

// GradedDecision pairs a decision with its grade and explanation.
type GradedDecision struct {
	Decision    Decision
	Grade       Grade
	Explanation string
}

// HandAnalysis is the post-hoc assessment of one completed hand.
type HandAnalysis struct {
	Score       int // 0..100
	HandScores  [engine.NumTeams]int
	MatchScores [engine.NumTeams]int
	Mistakes    int
	Blunders    int
	Decisions   []GradedDecision
}

// AnalyzeHand grades every recorded decision of a hand and blends the
// result with the game score.
func AnalyzeHand(g *engine.GameState, decisions []Decision) *HandAnalysis {
	a := &HandAnalysis{
		Score:       ComputeGameScore(g),
		HandScores:  g.HandScores,
		MatchScores: g.MatchScores,
	}
	for _, d := range decisions {
		grade, why := GradeDecision(d)
		a.Decisions = append(a.Decisions, GradedDecision{Decision: d, Grade: grade, Explanation: why})
		switch grade {
		case GradeMistake:
			a.Mistakes++
		case GradeBlunder:
			a.Blunders++
		}
	}
	return a
}

// ComputeGameScore blends the declarer team's share of total match points
// with hand-score efficiency relative to MaxHandScore, averaged and
// clamped to [0,100]. Returns 0 before any scores have accrued.
func ComputeGameScore(g *engine.GameState) int {
	total := g.MatchScores[0] + g.MatchScores[1]
	handTotal := g.HandScores[0] + g.HandScores[1]
	if total == 0 && handTotal == 0 {
		return 0
	}

	team := engine.Team(0)
	if g.Declarer != nil {
		team = g.Declarer.Team()
	}

	share := 0
	if total > 0 {
		share = g.MatchScores[team] * 100 / total
	}
	efficiency := g.HandScores[team] * 100 / MaxHandScore

	return clamp((share+efficiency)/2, 0, 100)
}

// Report renders a deterministic textual summary of the analysis. Pure
// formatting; no decision logic.
func Report(a *HandAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "overall score: %d/100\n", a.Score)
	fmt.Fprintf(&b, "hand scores: we %d, they %d\n", a.HandScores[0], a.HandScores[1])
	fmt.Fprintf(&b, "match scores: we %d, they %d\n", a.MatchScores[0], a.MatchScores[1])
	fmt.Fprintf(&b, "mistakes: %d, blunders: %d\n", a.Mistakes, a.Blunders)
	for i, d := range a.Decisions {
		played := "-"
		if d.Decision.Played != nil {
			played = d.Decision.Played.String()
		}
		fmt.Fprintf(&b, "%2d. seat %s played %s: %s (%s)\n",
			i+1, d.Decision.Seat, played, d.Grade, d.Explanation)
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
