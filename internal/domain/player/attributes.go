package player

// Attribute names, matching the upstream feed's field names. Weight profiles
// and attribute ranges are keyed by these.
const (
	AttrID                    = "id"
	AttrNowCost               = "now_cost"
	AttrTeamStrength          = "team_strength"
	AttrTeamFixtureDifficulty = "team_fix_dif"
	AttrChanceOfPlaying       = "chance_of_playing_next_round"
	AttrSelectedByPercent     = "selected_by_percent"
	AttrMinutes               = "minutes"
	AttrGoalsScored           = "goals_scored"
	AttrAssists               = "assists"
	AttrBonus                 = "bonus"
	AttrBPS                   = "bps"
	AttrTotalPoints           = "total_points"
	AttrPointsPerGame         = "points_per_game"
	AttrForm                  = "form"
	AttrEPNext                = "ep_next"
	AttrValueForm             = "value_form"
	AttrValueSeason           = "value_season"
	AttrExpectedGoals         = "expected_goals"
	AttrExpectedAssists       = "expected_assists"
	AttrExpectedGoalInv       = "expected_goal_involvements"
	AttrExpectedGoalsPer90    = "expected_goals_per_90"
	AttrExpectedAssistsPer90  = "expected_assists_per_90"
	AttrExpectedGoalInvPer90  = "expected_goal_involvements_per_90"
	AttrICTIndex              = "ict_index"
	AttrInfluence             = "influence"
	AttrCreativity            = "creativity"
	AttrThreat                = "threat"
	AttrCleanSheets           = "clean_sheets"
	AttrCleanSheetsPer90      = "clean_sheets_per_90"
	AttrSaves                 = "saves"
	AttrSavesPer90            = "saves_per_90"
	AttrPenaltiesSaved        = "penalties_saved"
	AttrGoalsConceded         = "goals_conceded"
	AttrGoalsConcededPer90    = "goals_conceded_per_90"
	AttrExpectedGoalsConc     = "expected_goals_conceded"
	AttrExpectedGoalsConcP90  = "expected_goals_conceded_per_90"
)

// attributeAccessors is the full numeric view of a player: every attribute
// eligible for range building and scoring. Identity and free-text fields
// (name, team name, status, news, role code) are deliberately absent.
var attributeAccessors = map[string]func(Player) Stat{
	AttrID:                    func(p Player) Stat { return StatOf(float64(p.ID)) },
	AttrNowCost:               func(p Player) Stat { return StatOf(float64(p.Price)) },
	AttrTeamStrength:          func(p Player) Stat { return StatOf(p.TeamStrength) },
	AttrTeamFixtureDifficulty: func(p Player) Stat { return StatOf(p.FixtureDifficulty) },
	AttrChanceOfPlaying:       func(p Player) Stat { return p.ChanceOfPlaying },
	AttrSelectedByPercent:     func(p Player) Stat { return p.SelectedByPercent },
	AttrMinutes:               func(p Player) Stat { return p.Minutes },
	AttrGoalsScored:           func(p Player) Stat { return p.GoalsScored },
	AttrAssists:               func(p Player) Stat { return p.Assists },
	AttrBonus:                 func(p Player) Stat { return p.Bonus },
	AttrBPS:                   func(p Player) Stat { return p.BPS },
	AttrTotalPoints:           func(p Player) Stat { return p.TotalPoints },
	AttrPointsPerGame:         func(p Player) Stat { return p.PointsPerGame },
	AttrForm:                  func(p Player) Stat { return p.Form },
	AttrEPNext:                func(p Player) Stat { return p.EPNext },
	AttrValueForm:             func(p Player) Stat { return p.ValueForm },
	AttrValueSeason:           func(p Player) Stat { return p.ValueSeason },
	AttrExpectedGoals:         func(p Player) Stat { return p.ExpectedGoals },
	AttrExpectedAssists:       func(p Player) Stat { return p.ExpectedAssists },
	AttrExpectedGoalInv:       func(p Player) Stat { return p.ExpectedGoalInvolvements },
	AttrExpectedGoalsPer90:    func(p Player) Stat { return p.ExpectedGoalsPer90 },
	AttrExpectedAssistsPer90:  func(p Player) Stat { return p.ExpectedAssistsPer90 },
	AttrExpectedGoalInvPer90:  func(p Player) Stat { return p.ExpectedGoalInvPer90 },
	AttrICTIndex:              func(p Player) Stat { return p.ICTIndex },
	AttrInfluence:             func(p Player) Stat { return p.Influence },
	AttrCreativity:            func(p Player) Stat { return p.Creativity },
	AttrThreat:                func(p Player) Stat { return p.Threat },
	AttrCleanSheets:           func(p Player) Stat { return p.CleanSheets },
	AttrCleanSheetsPer90:      func(p Player) Stat { return p.CleanSheetsPer90 },
	AttrSaves:                 func(p Player) Stat { return p.Saves },
	AttrSavesPer90:            func(p Player) Stat { return p.SavesPer90 },
	AttrPenaltiesSaved:        func(p Player) Stat { return p.PenaltiesSaved },
	AttrGoalsConceded:         func(p Player) Stat { return p.GoalsConceded },
	AttrGoalsConcededPer90:    func(p Player) Stat { return p.GoalsConcededPer90 },
	AttrExpectedGoalsConc:     func(p Player) Stat { return p.ExpectedGoalsConceded },
	AttrExpectedGoalsConcP90:  func(p Player) Stat { return p.ExpectedGoalsConcededP90 },
}

// AttributeNames lists every rangeable attribute.
func AttributeNames() []string {
	out := make([]string, 0, len(attributeAccessors))
	for name := range attributeAccessors {
		out = append(out, name)
	}
	return out
}

// Attribute returns the named numeric attribute of p. The second return is
// false for attribute names outside the numeric view.
func (p Player) Attribute(name string) (Stat, bool) {
	accessor, ok := attributeAccessors[name]
	if !ok {
		return Stat{}, false
	}
	return accessor(p), true
}
