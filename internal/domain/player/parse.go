package player

import (
	"math"
	"strconv"
	"strings"
)

// ParseStat is the parse-or-default boundary for feed values that arrive as
// strings. Empty, non-numeric and non-finite inputs produce an unknown stat,
// which scores as zero and is excluded from range building.
func ParseStat(raw string) Stat {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Stat{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Stat{}
	}
	return StatOf(v)
}

// StatFromPtr converts an optional numeric feed value, keeping absence
// distinct from zero.
func StatFromPtr[T int | int64 | float64](v *T) Stat {
	if v == nil {
		return Stat{}
	}
	return StatOf(float64(*v))
}
