package rating

import (
	"errors"
	"testing"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

// zeroWeights returns a profile map with every numeric attribute at zero,
// so tests can light up exactly the attributes they care about.
func zeroWeights(overrides map[string]float64) map[string]float64 {
	weights := make(map[string]float64)
	for _, attr := range player.AttributeNames() {
		weights[attr] = 0.0
	}
	for attr, w := range overrides {
		weights[attr] = w
	}
	return weights
}

// neutralPlayer has multipliers that all evaluate to exactly 1: missing
// chance reads as 100%, fixture difficulty sits at the scale midpoint, and
// strength 3 rescales to the 100 baseline.
func neutralPlayer(id int64, form float64) player.Player {
	return player.Player{
		ID:                id,
		ElementType:       3,
		TeamStrength:      3,
		FixtureDifficulty: 2.5,
		Form:              player.StatOf(form),
	}
}

func TestWeightedRaterSingleAttributeExtremes(t *testing.T) {
	players := []player.Player{
		neutralPlayer(1, 0),
		neutralPlayer(2, 10),
	}
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rater := NewWeightedRater(BuildRanges(players))
	rated, err := RateAll(players, rater, profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}

	if rated[0].RawRating != 0 {
		t.Errorf("minimum form player rated %v, want 0", rated[0].RawRating)
	}
	if rated[1].RawRating != 1000 {
		t.Errorf("maximum form player rated %v, want 1000", rated[1].RawRating)
	}
}

func TestWeightedRaterDeterministicAcrossRuns(t *testing.T) {
	players := []player.Player{
		neutralPlayer(1, 1.3),
		neutralPlayer(2, 4.7),
		neutralPlayer(3, 8.1),
	}
	profile := TransferProfile()

	run := func() []player.Player {
		rater := NewWeightedRater(BuildRanges(players))
		rated, err := RateAll(players, rater, profile)
		if err != nil {
			t.Fatalf("RateAll: %v", err)
		}
		out, err := NormalizeAll(rated)
		if err != nil {
			t.Fatalf("NormalizeAll: %v", err)
		}
		return out
	}

	first := run()
	second := run()
	for i := range first {
		if first[i].NormalizedRating != second[i].NormalizedRating {
			t.Errorf("player %d rated %v then %v across identical runs",
				first[i].ID, first[i].NormalizedRating, second[i].NormalizedRating)
		}
	}
}

func TestWeightedRaterNegativeWeightInverts(t *testing.T) {
	low := neutralPlayer(1, 0)
	low.GoalsConceded = player.StatOf(0)
	high := neutralPlayer(2, 0)
	high.GoalsConceded = player.StatOf(10)
	players := []player.Player{low, high}

	profile := NewProfile("conceded-only", zeroWeights(map[string]float64{
		player.AttrGoalsConceded: -1.0,
	}))

	rater := NewWeightedRater(BuildRanges(players))
	rated, err := RateAll(players, rater, profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}

	if rated[0].RawRating != 1000 {
		t.Errorf("clean defence rated %v, want 1000", rated[0].RawRating)
	}
	if rated[1].RawRating != 0 {
		t.Errorf("leaky defence rated %v, want 0", rated[1].RawRating)
	}
}

func TestWeightedRaterAllZeroWeightsScoreZero(t *testing.T) {
	players := []player.Player{
		neutralPlayer(1, 3),
		neutralPlayer(2, 7),
	}
	profile := NewProfile("all-zero", zeroWeights(nil))

	rater := NewWeightedRater(BuildRanges(players))
	rated, err := RateAll(players, rater, profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	for _, p := range rated {
		if p.RawRating != 0 {
			t.Errorf("player %d rated %v with an all-zero profile, want 0", p.ID, p.RawRating)
		}
	}
}

func TestWeightedRaterAdjustmentFactors(t *testing.T) {
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	tests := []struct {
		name   string
		mutate func(*player.Player)
		want   float64
	}{
		{"half availability", func(p *player.Player) {
			p.ChanceOfPlaying = player.StatOf(50)
		}, 500},
		{"explicit zero chance stays zero", func(p *player.Player) {
			p.ChanceOfPlaying = player.StatOf(0)
		}, 0},
		{"easy fixture boosts", func(p *player.Player) {
			p.FixtureDifficulty = 2.0
		}, 1025},
		{"hard fixture dampens", func(p *player.Player) {
			p.FixtureDifficulty = 3.0
		}, 975},
		{"relative strength rescales", func(p *player.Player) {
			p.TeamStrength = 5 // rescales to 110, factor 1.01
		}, 1010},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			weak := neutralPlayer(1, 0)
			strong := neutralPlayer(2, 10)
			tc.mutate(&strong)
			players := []player.Player{weak, strong}

			rater := NewWeightedRater(BuildRanges(players))
			rated, err := RateAll(players, rater, profile)
			if err != nil {
				t.Fatalf("RateAll: %v", err)
			}
			if rated[1].RawRating != tc.want {
				t.Errorf("rated %v, want %v", rated[1].RawRating, tc.want)
			}
		})
	}
}

func TestWeightedRaterMissingStatScoresZero(t *testing.T) {
	known := neutralPlayer(1, 8)
	unknown := neutralPlayer(2, 0)
	unknown.Form = player.Stat{} // never reported
	players := []player.Player{known, unknown}

	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rater := NewWeightedRater(BuildRanges(players))
	rated, err := RateAll(players, rater, profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	if rated[1].RawRating != 0 {
		t.Errorf("player with missing form rated %v, want 0", rated[1].RawRating)
	}
}

func TestRateAllEmptyPopulation(t *testing.T) {
	rater := NewWeightedRater(BuildRanges(nil))
	if _, err := RateAll(nil, rater, TransferProfile()); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("err = %v, want ErrEmptyPopulation", err)
	}
}

func TestRateAllCohortMismatch(t *testing.T) {
	population := []player.Player{neutralPlayer(1, 1), neutralPlayer(2, 2)}
	other := []player.Player{neutralPlayer(3, 3)}

	rater := NewWeightedRater(BuildRanges(population))
	if _, err := RateAll(other, rater, TransferProfile()); !errors.Is(err, ErrCohortMismatch) {
		t.Fatalf("err = %v, want ErrCohortMismatch", err)
	}
}

func TestRateAllLeavesInputUntouched(t *testing.T) {
	players := []player.Player{neutralPlayer(1, 1), neutralPlayer(2, 9)}
	rater := NewWeightedRater(BuildRanges(players))

	if _, err := RateAll(players, rater, TransferProfile()); err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	for _, p := range players {
		if p.RawRating != 0 {
			t.Errorf("input slice mutated: player %d carries rating %v", p.ID, p.RawRating)
		}
	}
}
