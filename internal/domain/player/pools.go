package player

import "sort"

// Pools maps each position to its players ordered by normalized rating,
// best first.
type Pools map[Position][]Player

// SortIntoPools partitions rated players by position and orders each pool by
// normalized rating descending. Ordering is stable, so equally rated players
// keep their input order. Players with an unknown element type are dropped.
// The input slice is never mutated; pools hold copies.
func SortIntoPools(players []Player) Pools {
	pools := Pools{
		PositionGoalkeeper: {},
		PositionDefender:   {},
		PositionMidfielder: {},
		PositionForward:    {},
	}
	for _, p := range players {
		pos := p.Position()
		if _, ok := pools[pos]; !ok {
			continue
		}
		pools[pos] = append(pools[pos], p)
	}
	for pos := range pools {
		pool := pools[pos]
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].NormalizedRating > pool[j].NormalizedRating
		})
	}
	return pools
}

// RatingSpan is the observed normalized-rating extremes of one pool.
type RatingSpan struct {
	Min float64
	Max float64
}

// RatingSpans reports per-position min and max normalized rating, for
// diagnostic display. Empty pools are omitted.
func (pools Pools) RatingSpans() map[Position]RatingSpan {
	out := make(map[Position]RatingSpan, len(pools))
	for pos, pool := range pools {
		if len(pool) == 0 {
			continue
		}
		span := RatingSpan{Min: pool[0].NormalizedRating, Max: pool[0].NormalizedRating}
		for _, p := range pool[1:] {
			if p.NormalizedRating < span.Min {
				span.Min = p.NormalizedRating
			}
			if p.NormalizedRating > span.Max {
				span.Max = p.NormalizedRating
			}
		}
		out[pos] = span
	}
	return out
}

// OwnedByID selects the players whose ids appear in ids, across all pools,
// ordered by normalized rating ascending so the weakest picks come first.
func (pools Pools) OwnedByID(ids map[int64]struct{}) []Player {
	out := make([]Player, 0, len(ids))
	for _, pool := range pools {
		for _, p := range pool {
			if _, ok := ids[p.ID]; ok {
				out = append(out, p)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NormalizedRating < out[j].NormalizedRating
	})
	return out
}
