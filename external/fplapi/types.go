package fplapi

// Bootstrap is the bootstrap-static payload: gameweek events, teams and the
// full player element list in one document.
type Bootstrap struct {
	Events   []Event   `json:"events"`
	Teams    []Team    `json:"teams"`
	Elements []Element `json:"elements"`
}

type Event struct {
	ID        int  `json:"id"`
	IsCurrent bool `json:"is_current"`
	Finished  bool `json:"finished"`
}

type Team struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Strength  int    `json:"strength"`
}

// Element is one player as the feed ships it. Counting stats arrive as
// numbers; rate stats arrive as decimal strings and may be empty or
// malformed, so they stay strings here and cross the parse-or-default
// boundary during ingestion.
type Element struct {
	ID                       int64   `json:"id"`
	WebName                  string  `json:"web_name"`
	ElementType              int     `json:"element_type"`
	Team                     int64   `json:"team"`
	NowCost                  int64   `json:"now_cost"`
	Status                   string  `json:"status"`
	News                     string  `json:"news"`
	ChanceOfPlayingNextRound *int    `json:"chance_of_playing_next_round"`
	SelectedByPercent        string  `json:"selected_by_percent"`
	Minutes                  int     `json:"minutes"`
	GoalsScored              int     `json:"goals_scored"`
	Assists                  int     `json:"assists"`
	Bonus                    int     `json:"bonus"`
	BPS                      int     `json:"bps"`
	TotalPoints              int     `json:"total_points"`
	CleanSheets              int     `json:"clean_sheets"`
	Saves                    int     `json:"saves"`
	PenaltiesSaved           int     `json:"penalties_saved"`
	GoalsConceded            int     `json:"goals_conceded"`
	PointsPerGame            string  `json:"points_per_game"`
	Form                     string  `json:"form"`
	EPNext                   string  `json:"ep_next"`
	ValueForm                string  `json:"value_form"`
	ValueSeason              string  `json:"value_season"`
	ExpectedGoals            string  `json:"expected_goals"`
	ExpectedAssists          string  `json:"expected_assists"`
	ExpectedGoalInvolvements string  `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string  `json:"expected_goals_conceded"`
	ICTIndex                 string  `json:"ict_index"`
	Influence                string  `json:"influence"`
	Creativity               string  `json:"creativity"`
	Threat                   string  `json:"threat"`
	ExpectedGoalsPer90       float64 `json:"expected_goals_per_90"`
	ExpectedAssistsPer90     float64 `json:"expected_assists_per_90"`
	ExpectedGoalInvPer90     float64 `json:"expected_goal_involvements_per_90"`
	ExpectedGoalsConcP90     float64 `json:"expected_goals_conceded_per_90"`
	GoalsConcededPer90       float64 `json:"goals_conceded_per_90"`
	SavesPer90               float64 `json:"saves_per_90"`
	CleanSheetsPer90         float64 `json:"clean_sheets_per_90"`
	StartsPer90              float64 `json:"starts_per_90"`
}

type Fixture struct {
	ID               int64   `json:"id"`
	Event            *int    `json:"event"`
	TeamH            int64   `json:"team_h"`
	TeamA            int64   `json:"team_a"`
	Finished         bool    `json:"finished"`
	KickoffTime      *string `json:"kickoff_time"`
	TeamHDifficulty  int     `json:"team_h_difficulty"`
	TeamADifficulty  int     `json:"team_a_difficulty"`
	ProvisionalStart bool    `json:"provisional_start_time"`
}

// Picks is the user's squad for one gameweek.
type Picks struct {
	EntryHistory EntryHistory `json:"entry_history"`
	Picks        []Pick       `json:"picks"`
}

type EntryHistory struct {
	Bank  int64 `json:"bank"` // tenths of a million
	Value int64 `json:"value"`
}

type Pick struct {
	Element       int64 `json:"element"`
	Position      int   `json:"position"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}
