package fixture

import "time"

// Fixture is one scheduled or played match from the upstream feed.
type Fixture struct {
	ID             int64
	Event          int // gameweek, 0 when unassigned
	HomeTeamID     int64
	AwayTeamID     int64
	Finished       bool
	KickoffTime    time.Time // zero when the fixture has no date yet
	HomeDifficulty float64
	AwayDifficulty float64
}

// Involves reports whether teamID plays in this fixture.
func (f Fixture) Involves(teamID int64) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// DifficultyFor returns the difficulty faced by teamID in this fixture.
func (f Fixture) DifficultyFor(teamID int64) float64 {
	if f.HomeTeamID == teamID {
		return f.HomeDifficulty
	}
	return f.AwayDifficulty
}
