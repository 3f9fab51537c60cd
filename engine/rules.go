package engine

// Rules holds the configurable rule settings for a match.
type Rules struct {
	MustFollowSuit      bool // must play lead suit when holding it
	MustTrumpWhenVoid   bool // must trump when void and trump is already in the trick
	OvertrumpRequired   bool // narrows forced trumps to strictly higher ones when possible
	DeclarationsEnabled bool
	LastTrickBonus      bool // +10 to the team winning the final trick
	MatchTargetScore    int  // match ends when a team reaches this
	ContractThreshold   int  // declarer team must strictly exceed this
	ContractBonus       int  // flat bonus awarded on the contract outcome
}

// DefaultRules returns the standard rule settings.
func DefaultRules() Rules {
	return Rules{
		MustFollowSuit:      true,
		MustTrumpWhenVoid:   true,
		OvertrumpRequired:   false,
		DeclarationsEnabled: true,
		LastTrickBonus:      true,
		MatchTargetScore:    1001,
		ContractThreshold:   162,
		ContractBonus:       90,
	}
}
