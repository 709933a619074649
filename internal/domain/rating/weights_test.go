package rating

import (
	"testing"

	"github.com/gafferbot/fplgaffer/internal/domain/player"
)

func TestProfileDefaultsToFullWeight(t *testing.T) {
	p := NewProfile("sparse", map[string]float64{player.AttrForm: 2.0})
	if got := p.Weight(player.AttrForm); got != 2.0 {
		t.Errorf("Weight(form) = %v, want 2.0", got)
	}
	if got := p.Weight(player.AttrMinutes); got != 1.0 {
		t.Errorf("Weight(minutes) = %v, want default 1.0", got)
	}
}

func TestProfileIsolatedFromSourceMap(t *testing.T) {
	source := map[string]float64{player.AttrForm: 2.0}
	p := NewProfile("copied", source)
	source[player.AttrForm] = 99

	if got := p.Weight(player.AttrForm); got != 2.0 {
		t.Errorf("Weight(form) = %v after source mutation, want 2.0", got)
	}
}

func TestBuiltinProfilesReserveMultipliers(t *testing.T) {
	for _, p := range []Profile{TransferProfile(), WildcardProfile()} {
		for _, attr := range []string{
			player.AttrTeamStrength,
			player.AttrTeamFixtureDifficulty,
			player.AttrChanceOfPlaying,
		} {
			if w := p.Weight(attr); w != 0 {
				t.Errorf("%s profile weighs %s at %v, want 0 (multiplier input)", p.Name(), attr, w)
			}
		}
	}
}

func TestBuiltinProfilesPunishConcessions(t *testing.T) {
	for _, p := range []Profile{TransferProfile(), WildcardProfile()} {
		for _, attr := range []string{
			player.AttrGoalsConceded,
			player.AttrGoalsConcededPer90,
			player.AttrExpectedGoalsConc,
			player.AttrExpectedGoalsConcP90,
		} {
			if w := p.Weight(attr); w >= 0 {
				t.Errorf("%s profile weighs %s at %v, want negative", p.Name(), attr, w)
			}
		}
	}
}

func TestProfileByName(t *testing.T) {
	if p, ok := ProfileByName("transfer"); !ok || p.Name() != "transfer" {
		t.Errorf("ProfileByName(transfer) = %v, %v", p.Name(), ok)
	}
	if p, ok := ProfileByName("wildcard"); !ok || p.Name() != "wildcard" {
		t.Errorf("ProfileByName(wildcard) = %v, %v", p.Name(), ok)
	}
	if _, ok := ProfileByName("nonsense"); ok {
		t.Error("ProfileByName(nonsense) resolved")
	}
}
