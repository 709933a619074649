package rating

import (
	"sort"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

// QuantileRater is the alternate engine strategy: instead of linear
// min-max position, an attribute's normalized value is the player's rank
// position within the population's observed values. More robust to
// outliers, but a different numeric convention from the weighted rater;
// ratings from the two are not comparable.
type QuantileRater struct {
	dist   map[string][]float64
	cohort Cohort
}

func NewQuantileRater(players []player.Player) *QuantileRater {
	dist := make(map[string][]float64, len(player.AttributeNames()))
	for _, attr := range player.AttributeNames() {
		values := make([]float64, 0, len(players))
		for _, p := range players {
			stat, _ := p.Attribute(attr)
			if stat.Known {
				values = append(values, stat.Value)
			}
		}
		if len(values) == 0 {
			continue
		}
		sort.Float64s(values)
		dist[attr] = values
	}
	return &QuantileRater{dist: dist, cohort: CohortOf(players)}
}

func (r *QuantileRater) Rate(p player.Player, profile Profile) float64 {
	attrs := make([]string, 0, len(r.dist))
	for attr := range r.dist {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	var numerator, posWeightSum, negWeightSum float64
	for _, attr := range attrs {
		weight := profile.Weight(attr)
		if weight == 0.0 {
			continue
		}
		numerator += r.rankPosition(attr, p) * weight
		if weight > 0 {
			posWeightSum += weight
		} else {
			negWeightSum += -weight
		}
	}

	base := baseScore(numerator, posWeightSum, negWeightSum)
	return round2(base * adjustmentFactors(p) * 1000.0)
}

func (r *QuantileRater) Cohort() Cohort { return r.cohort }

// rankPosition maps the player's value onto [0,1] by its position in the
// sorted population values: the minimum maps to 0, the maximum to 1.
// Missing values take position 0, mirroring the weighted engine's default.
func (r *QuantileRater) rankPosition(attr string, p player.Player) float64 {
	stat, ok := p.Attribute(attr)
	if !ok || !stat.Known {
		return 0.0
	}
	values := r.dist[attr]
	if len(values) < 2 {
		// single observed value, no spread
		return 0.0
	}
	idx := sort.SearchFloat64s(values, stat.Value)
	return clamp01(float64(idx) / float64(len(values)-1))
}
