package squad

import (
	"math"
	"sort"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

// MinCandidatePrice is the cheapest legally purchasable player, in tenths
// of a million.
const MinCandidatePrice int64 = 40

// DefaultCandidateLimit is how many replacement candidates to surface.
const DefaultCandidateLimit = 4

// FindReplacements ranks viable replacements for an owned player: same
// position, priced between the floor and the owned player's price plus the
// unspent bank (selling adds the player's own price back to the budget),
// not already owned, fully available, and certain to play. An empty result
// is a normal outcome, not an error.
func FindReplacements(owned player.Player, bank float64, pools player.Pools, currentIDs map[int64]struct{}, limit int) []player.Player {
	if limit <= 0 {
		limit = DefaultCandidateLimit
	}

	ceiling := owned.Price + int64(math.Round(bank*10))
	candidates := make([]player.Player, 0, limit)
	for _, p := range pools[owned.Position()] {
		if p.Price < MinCandidatePrice || p.Price > ceiling {
			continue
		}
		if _, ok := currentIDs[p.ID]; ok {
			continue
		}
		if p.Status != player.StatusAvailable {
			continue
		}
		// Strict policy: partial availability, however high, is excluded.
		if p.ChancePercent() != 100 {
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].NormalizedRating > candidates[j].NormalizedRating
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
