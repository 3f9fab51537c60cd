// Command belasim plays bot-vs-bot matches against the engine and prints
// a per-hand analysis report. It is a driver only: all rules live in the
// engine, all decisions in the bot strategies.
package main

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/mvrdoljak/belot/engine"
	"github.com/mvrdoljak/belot/engine/analysis"
	"github.com/mvrdoljak/belot/engine/bot"
)

var log = logrus.New()

func main() {
	// Overrides come from the environment; a local .env is optional.
	_ = godotenv.Load()

	seed := envInt("BELASIM_SEED", int64(1))
	maxHands := envInt("BELASIM_MAX_HANDS", 100)

	rules := engine.DefaultRules()
	rules.MatchTargetScore = envInt("BELASIM_TARGET_SCORE", rules.MatchTargetScore)
	rules.OvertrumpRequired = envBool("BELASIM_OVERTRUMP", rules.OvertrumpRequired)
	rules.DeclarationsEnabled = envBool("BELASIM_DECLARATIONS", rules.DeclarationsEnabled)
	rules.LastTrickBonus = envBool("BELASIM_LAST_TRICK_BONUS", rules.LastTrickBonus)

	if err := run(rules, seed, maxHands); err != nil {
		log.WithError(err).Fatal("simulation failed")
	}
}

func run(rules engine.Rules, seed int64, maxHands int) error {
	rng := rand.New(rand.NewSource(seed))
	log.WithFields(logrus.Fields{"seed": seed, "target": rules.MatchTargetScore}).
		Info("starting match")

	// South/North play the advanced tier, West/East the beginner tier.
	seats := [engine.NumSeats]bot.Strategy{
		bot.Advanced{}, bot.Beginner{}, bot.Advanced{}, bot.Beginner{},
	}

	g := engine.NewMatch(rules)
	var decisions []analysis.Decision
	var called [engine.NumSeats]bool // one call per seat per hand keeps the auction finite
	hand := 0

	for g.Phase != engine.PhaseGameOver && hand < maxHands {
		seat := g.CurrentPlayer
		strat := seats[seat]

		var (
			ng  *engine.GameState
			err error
		)
		switch g.Phase {
		case engine.PhaseDeal:
			hand++
			decisions = decisions[:0]
			called = [engine.NumSeats]bool{}
			ng, err = g.DealHand(rng)

		case engine.PhaseBidding:
			if suit, ok, why := strat.ChooseBid(g, seat); ok && !called[seat] {
				called[seat] = true
				log.WithFields(logrus.Fields{"seat": seat, "suit": suit}).Debug(why)
				ng, err = g.Bid(seat, suit)
			} else {
				ng, err = g.PassBid(seat)
			}

		case engine.PhaseDealerChoice:
			suit, why := strat.ChooseTrump(g, g.Dealer)
			log.WithField("seat", g.Dealer).Debug(why)
			ng, err = g.ChooseTrump(g.Dealer, suit)

		case engine.PhaseTalonExchange:
			discards, why := strat.ChooseDiscard(g, seat)
			log.WithField("seat", seat).Debug(why)
			ng, err = g.DiscardTalon(seat, discards)

		case engine.PhasePlay:
			card, why, merr := strat.ChooseMove(g, seat)
			if merr != nil {
				return merr
			}
			log.WithFields(logrus.Fields{"seat": seat, "card": card.String()}).Debug(why)
			if seat == engine.South {
				decisions = append(decisions, analysis.RecordDecision(g, seat, card))
			}
			ng, err = g.PlayCard(seat, card)

		default:
			log.WithField("phase", g.Phase).Fatal("driver reached an unplayable phase")
		}
		if err != nil {
			return err
		}

		handDone := g.Phase == engine.PhasePlay &&
			(ng.Phase == engine.PhaseDeal || ng.Phase == engine.PhaseGameOver)
		g = ng
		if handDone {
			printHand(hand, g, decisions)
		}
	}

	if winner, ok := g.Winner(); ok {
		pterm.DefaultBasicText.Printfln("match over after %d hands: team %d wins %d to %d",
			hand, winner, g.MatchScores[winner], g.MatchScores[winner.Other()])
	}
	return nil
}

func printHand(hand int, g *engine.GameState, decisions []analysis.Decision) {
	a := analysis.AnalyzeHand(g, decisions)
	pterm.DefaultSection.Printfln("hand %d", hand)
	pterm.DefaultBasicText.Println(analysis.Report(a))
	log.WithFields(logrus.Fields{
		"hand":     hand,
		"score":    a.Score,
		"mistakes": a.Mistakes,
		"blunders": a.Blunders,
		"match":    g.MatchScores,
	}).Info("hand complete")
}

func envInt[T int | int64](key string, def T) T {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.WithField("key", key).Warn("ignoring unparsable integer override")
		return def
	}
	return T(n)
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.WithField("key", key).Warn("ignoring unparsable boolean override")
		return def
	}
	return b
}
