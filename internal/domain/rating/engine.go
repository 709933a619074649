package rating

import (
	"errors"
	"fmt"
	"math"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

var (
	// ErrEmptyPopulation is returned when rating or normalizing nothing.
	ErrEmptyPopulation = errors.New("rating: empty population")
	// ErrCohortMismatch is returned when ratings are requested against
	// ranges built from a different population snapshot.
	ErrCohortMismatch = errors.New("rating: population does not match the cohort the rater was built from")
)

// Rater scores a single player against a frozen population snapshot.
// Implementations differ only in what "normalized value" means: the
// weighted rater uses linear min-max position, the quantile rater uses
// rank position. The two conventions are never mixed within a run.
type Rater interface {
	Rate(p player.Player, profile Profile) float64
	Cohort() Cohort
}

// WeightedRater is the canonical engine: linear min-max normalization of
// every ranged attribute, combined under the profile's signed weights.
type WeightedRater struct {
	ranges Ranges
}

func NewWeightedRater(ranges Ranges) *WeightedRater {
	return &WeightedRater{ranges: ranges}
}

// Rate produces the raw rating: a [0,1] base score from the weighted,
// normalized attribute sum, shifted by the availability, fixture and team
// strength multipliers, scaled by 1000 and rounded to two decimals. The
// scale is a historical magnitude convention; normalization rescales it
// downstream anyway.
func (r *WeightedRater) Rate(p player.Player, profile Profile) float64 {
	var numerator, posWeightSum, negWeightSum float64
	for _, attr := range r.ranges.Attributes() {
		weight := profile.Weight(attr)
		if weight == 0.0 {
			// multiplier attribute, consumed below
			continue
		}
		span, _ := r.ranges.Span(attr)
		numerator += normalizeSpan(attributeValue(p, attr), span) * weight
		if weight > 0 {
			posWeightSum += weight
		} else {
			negWeightSum += -weight
		}
	}

	base := baseScore(numerator, posWeightSum, negWeightSum)
	return round2(base * adjustmentFactors(p) * 1000.0)
}

func (r *WeightedRater) Cohort() Cohort { return r.ranges.Cohort() }

// attributeValue applies the missing-value default: an unknown stat scores
// as zero rather than aborting the player.
func attributeValue(p player.Player, attr string) float64 {
	stat, ok := p.Attribute(attr)
	if !ok || !stat.Known {
		return 0.0
	}
	return stat.Value
}

// normalizeSpan maps v into [0,1] against the population span. A zero
// spread normalizes to 0 rather than dividing by zero.
func normalizeSpan(v float64, span Span) float64 {
	if span.Max == span.Min {
		return 0.0
	}
	return clamp01((v - span.Min) / (span.Max - span.Min))
}

// baseScore affine-maps the weighted numerator from its theoretical range
// [-negWeightSum, +posWeightSum] into [0,1]. A zero weight span is defined
// as 0.
func baseScore(numerator, posWeightSum, negWeightSum float64) float64 {
	span := posWeightSum + negWeightSum
	if span == 0 {
		return 0.0
	}
	return clamp01((numerator + negWeightSum) / span)
}

// adjustmentFactors combines the three multipliers derived from the
// zero-weight attributes: availability, fixture ease and team strength.
func adjustmentFactors(p player.Player) float64 {
	availability := p.ChancePercent() / 100.0

	// 2.5 is the neutral midpoint of the 1-5 difficulty scale; easier
	// fixtures boost, harder dampen, 5% per unit of deviation.
	fixtureFactor := 1.0 + (2.5-p.FixtureDifficulty)*0.05

	// Team strength arrives on two scales; values at or below 10 are the
	// relative scale and get rescaled onto the 100-based one first.
	strength := p.TeamStrength
	if strength <= 10 {
		strength = 100.0 + (strength-3.0)*5.0
	}
	teamFactor := 1.0 + (strength-100.0)/1000.0

	return availability * fixtureFactor * teamFactor
}

// RateAll rates a whole population with the given strategy, enforcing that
// the rater was built from this exact population. Returns a new slice; the
// input is untouched.
func RateAll(players []player.Player, rater Rater, profile Profile) ([]player.Player, error) {
	if len(players) == 0 {
		return nil, ErrEmptyPopulation
	}
	if CohortOf(players) != rater.Cohort() {
		return nil, fmt.Errorf("%w: rating %d players against a rater built over %d",
			ErrCohortMismatch, len(players), rater.Cohort().Size)
	}

	out := make([]player.Player, len(players))
	copy(out, players)
	for i := range out {
		out[i].RawRating = rater.Rate(out[i], profile)
	}
	return out, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
