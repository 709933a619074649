package rating

import "github.com/gafferbot/fplgaffer/internal/domain/player"

// DegenerateNormalized is what every player receives when the whole
// population carries the same raw rating: with no spread there is no
// ordering, so everyone sits at the midpoint of the 0-100 band.
const DegenerateNormalized = 50.0

// NormalizeAll rescales raw ratings across the population onto 0-100, two
// decimals. The population min maps to exactly 0 and the max to exactly
// 100. Only the normalized rating is meaningful downstream. Returns a new
// slice; the input is untouched.
func NormalizeAll(players []player.Player) ([]player.Player, error) {
	if len(players) == 0 {
		return nil, ErrEmptyPopulation
	}

	minRating, maxRating := players[0].RawRating, players[0].RawRating
	for _, p := range players[1:] {
		if p.RawRating < minRating {
			minRating = p.RawRating
		}
		if p.RawRating > maxRating {
			maxRating = p.RawRating
		}
	}

	out := make([]player.Player, len(players))
	copy(out, players)
	for i := range out {
		if maxRating == minRating {
			out[i].NormalizedRating = DegenerateNormalized
			continue
		}
		out[i].NormalizedRating = round2((out[i].RawRating - minRating) / (maxRating - minRating) * 100)
	}
	return out, nil
}
