package rating

import "github.com/gafferbot/fplgaffer/internal/domain/player"

// Profile is an immutable named set of per-attribute signed weights.
// Positive weights reward high values, negative weights punish them, and a
// weight of exactly zero reserves the attribute as a multiplier input
// consumed by the engine's adjustment factors instead of the weighted sum.
// Attributes missing from a profile weigh 1.0, so they count fully in
// favour.
type Profile struct {
	name    string
	weights map[string]float64
}

// NewProfile copies weights into an immutable profile.
func NewProfile(name string, weights map[string]float64) Profile {
	copied := make(map[string]float64, len(weights))
	for k, v := range weights {
		copied[k] = v
	}
	return Profile{name: name, weights: copied}
}

func (p Profile) Name() string { return p.name }

// Weight returns the signed weight for attr, defaulting to 1.0 when the
// profile does not mention it.
func (p Profile) Weight(attr string) float64 {
	if w, ok := p.weights[attr]; ok {
		return w
	}
	return 1.0
}

// TransferProfile favours current form and next-gameweek expectation, for
// immediate single swaps.
func TransferProfile() Profile { return transferProfile }

// WildcardProfile favours season-long value and consistency, for a full
// squad rebuild.
func WildcardProfile() Profile { return wildcardProfile }

// ProfileByName resolves "transfer" or "wildcard".
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case "transfer":
		return transferProfile, true
	case "wildcard":
		return wildcardProfile, true
	default:
		return Profile{}, false
	}
}

var transferProfile = NewProfile("transfer", map[string]float64{
	player.AttrMinutes:              2.8,
	player.AttrGoalsScored:          4.2,
	player.AttrAssists:              3.2,
	player.AttrBonus:                2.0,
	player.AttrBPS:                  1.2,
	player.AttrTotalPoints:          3.0,
	player.AttrPointsPerGame:        2.3,
	player.AttrForm:                 3.8,
	player.AttrEPNext:               3.5,
	player.AttrValueForm:            1.2,
	player.AttrValueSeason:          1.0,
	player.AttrExpectedGoals:        2.8,
	player.AttrExpectedAssists:      2.3,
	player.AttrExpectedGoalInv:      2.8,
	player.AttrExpectedGoalsPer90:   1.7,
	player.AttrExpectedAssistsPer90: 1.3,
	player.AttrExpectedGoalInvPer90: 1.7,
	player.AttrICTIndex:             1.2,
	player.AttrInfluence:            0.8,
	player.AttrCreativity:           0.8,
	player.AttrThreat:               1.2,
	player.AttrCleanSheets:          3.0,
	player.AttrCleanSheetsPer90:     1.3,
	player.AttrSaves:                2.3,
	player.AttrSavesPer90:           2.3,
	player.AttrPenaltiesSaved:       1.0,
	player.AttrGoalsConceded:        -2.5,
	player.AttrGoalsConcededPer90:   -2.5,
	player.AttrExpectedGoalsConc:    -2.0,
	player.AttrExpectedGoalsConcP90: -2.0,
	// multiplier inputs, kept at zero by convention with the engine
	player.AttrTeamStrength:          0.0,
	player.AttrTeamFixtureDifficulty: 0.0,
	player.AttrChanceOfPlaying:       0.0,
})

var wildcardProfile = NewProfile("wildcard", map[string]float64{
	player.AttrMinutes:              2.2,
	player.AttrGoalsScored:          3.8,
	player.AttrAssists:              3.0,
	player.AttrBonus:                1.5,
	player.AttrBPS:                  1.0,
	player.AttrTotalPoints:          3.0,
	player.AttrPointsPerGame:        2.8,
	player.AttrForm:                 2.5,
	player.AttrEPNext:               1.5,
	player.AttrValueForm:            2.0,
	player.AttrValueSeason:          2.0,
	player.AttrExpectedGoals:        2.5,
	player.AttrExpectedAssists:      2.0,
	player.AttrExpectedGoalInv:      2.5,
	player.AttrExpectedGoalsPer90:   2.3,
	player.AttrExpectedAssistsPer90: 1.8,
	player.AttrExpectedGoalInvPer90: 2.2,
	player.AttrICTIndex:             1.8,
	player.AttrInfluence:            1.0,
	player.AttrCreativity:           1.0,
	player.AttrThreat:               1.5,
	player.AttrCleanSheets:          2.3,
	player.AttrCleanSheetsPer90:     1.7,
	player.AttrSaves:                2.0,
	player.AttrSavesPer90:           2.0,
	player.AttrPenaltiesSaved:       1.0,
	player.AttrGoalsConceded:        -1.8,
	player.AttrGoalsConcededPer90:   -1.8,
	player.AttrExpectedGoalsConc:    -1.3,
	player.AttrExpectedGoalsConcP90: -1.3,
	// multiplier inputs, kept at zero by convention with the engine
	player.AttrTeamStrength:          0.0,
	player.AttrTeamFixtureDifficulty: 0.0,
	player.AttrChanceOfPlaying:       0.0,
})
