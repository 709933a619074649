package rating

import (
	"sort"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

// Span is the observed min/max of one attribute across a population.
type Span struct {
	Min float64
	Max float64
}

// Cohort identifies the exact population a set of ranges or ratings was
// computed over. Ranges and ratings are only meaningful against matching
// cohorts.
type Cohort struct {
	Size        int
	fingerprint uint64
}

// CohortOf fingerprints a population by size and member ids.
func CohortOf(players []player.Player) Cohort {
	c := Cohort{Size: len(players)}
	for _, p := range players {
		c.fingerprint ^= uint64(p.ID) * 0x9e3779b97f4a7c15
	}
	return c
}

// Ranges holds per-attribute spans for one population snapshot.
type Ranges struct {
	spans  map[string]Span
	cohort Cohort
}

// BuildRanges scans the full population and records the min/max of every
// numeric attribute, counting only values the players actually carry.
// Attributes with no known value anywhere are omitted and therefore never
// influence scoring. Pure function of its input.
func BuildRanges(players []player.Player) Ranges {
	spans := make(map[string]Span, len(player.AttributeNames()))
	for _, attr := range player.AttributeNames() {
		span := Span{}
		seen := false
		for _, p := range players {
			stat, _ := p.Attribute(attr)
			if !stat.Known {
				continue
			}
			if !seen {
				span = Span{Min: stat.Value, Max: stat.Value}
				seen = true
				continue
			}
			if stat.Value < span.Min {
				span.Min = stat.Value
			}
			if stat.Value > span.Max {
				span.Max = stat.Value
			}
		}
		if seen {
			spans[attr] = span
		}
	}
	return Ranges{spans: spans, cohort: CohortOf(players)}
}

// Span returns the recorded span for attr.
func (r Ranges) Span(attr string) (Span, bool) {
	span, ok := r.spans[attr]
	return span, ok
}

// Attributes lists the ranged attributes in deterministic order.
func (r Ranges) Attributes() []string {
	out := make([]string, 0, len(r.spans))
	for attr := range r.spans {
		out = append(out, attr)
	}
	sort.Strings(out)
	return out
}

// Cohort reports which population the ranges were built from.
func (r Ranges) Cohort() Cohort { return r.cohort }
