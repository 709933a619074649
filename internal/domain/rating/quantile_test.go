package rating

import (
	"testing"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

func TestQuantileRaterRanksByPosition(t *testing.T) {
	players := []player.Player{
		neutralPlayer(1, 1),
		neutralPlayer(2, 5),
		neutralPlayer(3, 9),
	}
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rated, err := RateAll(players, NewQuantileRater(players), profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}

	want := []float64{0, 500, 1000}
	for i, p := range rated {
		if p.RawRating != want[i] {
			t.Errorf("player %d rated %v, want %v", p.ID, p.RawRating, want[i])
		}
	}
}

func TestQuantileRaterResistsOutliers(t *testing.T) {
	// Under min-max scaling the outlier would squash the other two
	// together; rank position keeps them evenly spaced.
	players := []player.Player{
		neutralPlayer(1, 1),
		neutralPlayer(2, 2),
		neutralPlayer(3, 1000),
	}
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rated, err := RateAll(players, NewQuantileRater(players), profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	if rated[1].RawRating != 500 {
		t.Errorf("middle player rated %v, want 500", rated[1].RawRating)
	}
}

func TestQuantileRaterSingleValueNoSpread(t *testing.T) {
	players := []player.Player{neutralPlayer(1, 4)}
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rated, err := RateAll(players, NewQuantileRater(players), profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	if rated[0].RawRating != 0 {
		t.Errorf("lone player rated %v, want 0", rated[0].RawRating)
	}
}

func TestQuantileRaterMissingValueRanksBottom(t *testing.T) {
	missing := neutralPlayer(3, 0)
	missing.Form = player.Stat{}
	players := []player.Player{
		neutralPlayer(1, 2),
		neutralPlayer(2, 8),
		missing,
	}
	profile := NewProfile("form-only", zeroWeights(map[string]float64{
		player.AttrForm: 1.0,
	}))

	rated, err := RateAll(players, NewQuantileRater(players), profile)
	if err != nil {
		t.Fatalf("RateAll: %v", err)
	}
	if rated[2].RawRating != 0 {
		t.Errorf("player with missing form rated %v, want 0", rated[2].RawRating)
	}
}
