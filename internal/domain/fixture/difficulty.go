package fixture

import "sort"

// NeutralDifficulty is the midpoint of the 1-5 difficulty scale, used when a
// team has no scheduled fixtures left.
const NeutralDifficulty = 2.5

// DefaultHorizon is how many upcoming fixtures feed the difficulty average.
const DefaultHorizon = 3

// UpcomingDifficulty averages the difficulty teamID faces over its next
// horizon scheduled, unfinished fixtures, ordered by kickoff. Fixtures
// without a kickoff date are ignored; with nothing left to play the neutral
// midpoint is returned.
func UpcomingDifficulty(fixtures []Fixture, teamID int64, horizon int) float64 {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	upcoming := make([]Fixture, 0, horizon)
	for _, f := range fixtures {
		if f.Finished || !f.Involves(teamID) || f.KickoffTime.IsZero() {
			continue
		}
		upcoming = append(upcoming, f)
	}
	if len(upcoming) == 0 {
		return NeutralDifficulty
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].KickoffTime.Before(upcoming[j].KickoffTime)
	})
	if len(upcoming) > horizon {
		upcoming = upcoming[:horizon]
	}

	var sum float64
	for _, f := range upcoming {
		sum += f.DifficultyFor(teamID)
	}
	return sum / float64(len(upcoming))
}
