package team

// Team carries the league-table context joined onto every player.
type Team struct {
	ID       int64
	Name     string
	Short    string
	Strength float64
}

// Context is a team's scoring inputs after fixture aggregation.
type Context struct {
	Team              Team
	FixtureDifficulty float64
}
